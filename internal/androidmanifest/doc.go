// Package androidmanifest models the parts of an AndroidManifest.xml that
// bleperm patches and injects the BLE peripheral declarations into them.
//
// A Tree is a scoped, order-preserving view over the <manifest> element's
// children: each field is an element name (uses-permission, uses-feature, ...)
// mapped to its records in document order. Inject works purely on the Tree.
// Document is the XML codec that produces a Tree from a file and commits the
// records appended to it back into the original markup without reformatting.
package androidmanifest
