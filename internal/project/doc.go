// Package project handles the .bleperm/project.yaml file that tells bleperm
// where an app's platform manifests live. It loads and saves the file,
// validates it against the embedded JSON schema, and discovers manifests at
// the locations React Native, Capacitor, Cordova, and plain Gradle/Xcode
// projects use.
package project
