// Package infoplist patches an iOS Info.plist with the Bluetooth usage
// descriptions and background modes a BLE peripheral app needs.
//
// Tree is an ordered view of the top-level plist dictionary. Values are
// string, bool, []any (arrays), or Raw for every other plist node, which is
// carried through untouched. Document reads and writes the XML plist format,
// keeping key order and formatting of everything it does not change.
package infoplist
