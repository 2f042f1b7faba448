package infoplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleperm/bleperm/internal/capability"
)

func TestInject_EmptyTree(t *testing.T) {
	tree := Inject(NewTree())

	always, ok := tree.String(capability.KeyBluetoothAlwaysUsage)
	require.True(t, ok)
	assert.Equal(t, capability.DefaultAlwaysUsageDescription, always)

	peripheral, ok := tree.String(capability.KeyBluetoothPeripheralUsage)
	require.True(t, ok)
	assert.Equal(t, capability.DefaultPeripheralUsageDescription, peripheral)

	modes, ok := tree.Get(capability.KeyBackgroundModes)
	require.True(t, ok)
	assert.Equal(t, []any{"bluetooth-central", "bluetooth-peripheral"}, modes)
}

func TestInject_KeepsCustomDescription(t *testing.T) {
	tree := NewTree()
	tree.Set(capability.KeyBluetoothAlwaysUsage, "Custom text")

	Inject(tree)

	got, _ := tree.String(capability.KeyBluetoothAlwaysUsage)
	assert.Equal(t, "Custom text", got)
}

func TestInject_FillsEmptyDescription(t *testing.T) {
	tree := NewTree()
	tree.Set(capability.KeyBluetoothPeripheralUsage, "")

	Inject(tree)

	got, _ := tree.String(capability.KeyBluetoothPeripheralUsage)
	assert.Equal(t, capability.DefaultPeripheralUsageDescription, got)
}

func TestInject_AppendsModesInOrder(t *testing.T) {
	tests := []struct {
		name  string
		start []any
		want  []any
	}{
		{"audio", []any{"audio"}, []any{"audio", "bluetooth-central", "bluetooth-peripheral"}},
		{"empty", []any{}, []any{"bluetooth-central", "bluetooth-peripheral"}},
		{"peripheral present", []any{"bluetooth-peripheral", "fetch"}, []any{"bluetooth-peripheral", "fetch", "bluetooth-central"}},
		{"both present", []any{"bluetooth-peripheral", "bluetooth-central"}, []any{"bluetooth-peripheral", "bluetooth-central"}},
		{"case differs", []any{"Bluetooth-Central"}, []any{"Bluetooth-Central", "bluetooth-central", "bluetooth-peripheral"}},
		{"non-string entry", []any{true}, []any{true, "bluetooth-central", "bluetooth-peripheral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			tree.Set(capability.KeyBackgroundModes, tt.start)

			Inject(tree)

			got, _ := tree.Get(capability.KeyBackgroundModes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInject_Idempotent(t *testing.T) {
	build := func() *Tree {
		tree := NewTree()
		tree.Set("CFBundleName", "Beacon")
		tree.Set(capability.KeyBackgroundModes, []any{"audio"})
		tree.Set(capability.KeyBluetoothPeripheralUsage, "")
		return tree
	}

	once := Inject(build())
	twice := Inject(Inject(build()))

	assert.True(t, once.Equal(twice))
}

func TestInject_LeavesOtherKeysAlone(t *testing.T) {
	tree := NewTree()
	tree.Set("CFBundleName", "Beacon")
	tree.Set("LSRequiresIPhoneOS", true)
	tree.Set("UIRequiredDeviceCapabilities", []any{"armv7"})

	Inject(tree)

	assert.Equal(t, []string{
		"CFBundleName",
		"LSRequiresIPhoneOS",
		"UIRequiredDeviceCapabilities",
		capability.KeyBluetoothAlwaysUsage,
		capability.KeyBluetoothPeripheralUsage,
		capability.KeyBackgroundModes,
	}, tree.Keys())

	name, _ := tree.String("CFBundleName")
	assert.Equal(t, "Beacon", name)
	req, _ := tree.Get("LSRequiresIPhoneOS")
	assert.Equal(t, true, req)
	caps, _ := tree.Get("UIRequiredDeviceCapabilities")
	assert.Equal(t, []any{"armv7"}, caps)
}

func TestInjectWith_Descriptions(t *testing.T) {
	tree := NewTree()
	tree.Set(capability.KeyBluetoothPeripheralUsage, "Kept")

	InjectWith(tree, Descriptions{Always: "Finds your tags.", Peripheral: "Ignored"})

	always, _ := tree.String(capability.KeyBluetoothAlwaysUsage)
	assert.Equal(t, "Finds your tags.", always)
	peripheral, _ := tree.String(capability.KeyBluetoothPeripheralUsage)
	assert.Equal(t, "Kept", peripheral)
}

func TestInject_NonArrayModesPanics(t *testing.T) {
	tree := NewTree()
	tree.Set(capability.KeyBackgroundModes, "audio")

	assert.Panics(t, func() { Inject(tree) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modes   any
		wantErr string
	}{
		{name: "absent"},
		{name: "array", modes: []any{"audio"}},
		{name: "string", modes: "audio", wantErr: "UIBackgroundModes must be an array, got string"},
		{name: "boolean", modes: true, wantErr: "got boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			if tt.modes != nil {
				tree.Set(capability.KeyBackgroundModes, tt.modes)
			}
			err := Validate(tree)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMissing(t *testing.T) {
	tree := NewTree()
	tree.Set(capability.KeyBluetoothAlwaysUsage, "Custom text")
	tree.Set(capability.KeyBackgroundModes, []any{"bluetooth-central"})
	before := tree.Clone()

	assert.Equal(t, []string{
		capability.KeyBluetoothPeripheralUsage,
		"UIBackgroundModes bluetooth-peripheral",
	}, Missing(tree))
	assert.True(t, tree.Equal(before))

	assert.Empty(t, Missing(Inject(tree)))
}
