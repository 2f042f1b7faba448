package androidmanifest

import (
	"github.com/bleperm/bleperm/internal/capability"
)

// Inject appends the BLE peripheral permissions and the bluetooth_le feature
// to t when they are not already declared, and returns t.
//
// Missing uses-permission and uses-feature fields are created empty first.
// Existing records are never removed or reordered, and no other field is
// touched. Running Inject again on its own output changes nothing.
func Inject(t *Tree) *Tree {
	permissions := ensureField(t, FieldUsesPermission)
	for _, name := range capability.AndroidPermissions {
		if !hasName(permissions, name) {
			permissions = append(permissions, NewRecord(Attr{Key: AttrName, Value: name}))
		}
	}
	t.SetField(FieldUsesPermission, permissions)

	features := ensureField(t, FieldUsesFeature)
	if !hasName(features, capability.FeatureBluetoothLE) {
		features = append(features, NewRecord(
			Attr{Key: AttrName, Value: capability.FeatureBluetoothLE},
			Attr{Key: AttrRequired, Value: "true"},
		))
	}
	t.SetField(FieldUsesFeature, features)

	return t
}

// Missing lists the declarations Inject would add to t, without changing it.
// Entries read "<field> <name>", e.g. "uses-permission android.permission.BLUETOOTH".
func Missing(t *Tree) []string {
	var missing []string

	permissions, _ := t.Field(FieldUsesPermission)
	for _, name := range capability.AndroidPermissions {
		if !hasName(permissions, name) {
			missing = append(missing, FieldUsesPermission+" "+name)
		}
	}

	features, _ := t.Field(FieldUsesFeature)
	if !hasName(features, capability.FeatureBluetoothLE) {
		missing = append(missing, FieldUsesFeature+" "+capability.FeatureBluetoothLE)
	}

	return missing
}

func ensureField(t *Tree, name string) []*Record {
	records, ok := t.Field(name)
	if !ok {
		records = []*Record{}
		t.SetField(name, records)
	}
	return records
}

// hasName reports whether any record's android:name equals name exactly.
// Records without the attribute never match.
func hasName(records []*Record, name string) bool {
	for _, r := range records {
		if v, ok := r.Name(); ok && v == name {
			return true
		}
	}
	return false
}
