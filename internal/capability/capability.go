package capability

// AndroidPermissionPrefix is the namespace every Android platform permission
// name lives under.
const AndroidPermissionPrefix = "android.permission."

// Android permission names, fully qualified.
const (
	PermissionBluetooth            = AndroidPermissionPrefix + "BLUETOOTH"
	PermissionBluetoothAdmin       = AndroidPermissionPrefix + "BLUETOOTH_ADMIN"
	PermissionBluetoothAdvertise   = AndroidPermissionPrefix + "BLUETOOTH_ADVERTISE"
	PermissionBluetoothConnect     = AndroidPermissionPrefix + "BLUETOOTH_CONNECT"
	PermissionBluetoothScan        = AndroidPermissionPrefix + "BLUETOOTH_SCAN"
	PermissionAccessFineLocation   = AndroidPermissionPrefix + "ACCESS_FINE_LOCATION"
	PermissionAccessCoarseLocation = AndroidPermissionPrefix + "ACCESS_COARSE_LOCATION"
	PermissionForegroundService    = AndroidPermissionPrefix + "FOREGROUND_SERVICE"
)

// FeatureBluetoothLE is the uses-feature name for BLE hardware.
const FeatureBluetoothLE = "android.hardware.bluetooth_le"

// iOS Info.plist keys.
const (
	KeyBluetoothAlwaysUsage     = "NSBluetoothAlwaysUsageDescription"
	KeyBluetoothPeripheralUsage = "NSBluetoothPeripheralUsageDescription"
	KeyBackgroundModes          = "UIBackgroundModes"
)

// Background mode tokens for UIBackgroundModes.
const (
	ModeBluetoothCentral    = "bluetooth-central"
	ModeBluetoothPeripheral = "bluetooth-peripheral"
)

// Default usage-description text, used when the app does not supply its own.
const (
	DefaultAlwaysUsageDescription     = "This app uses Bluetooth to broadcast and detect nearby devices."
	DefaultPeripheralUsageDescription = "This app uses Bluetooth to broadcast its presence to nearby devices."
)

// AndroidPermissions lists the permissions in insertion order.
var AndroidPermissions = []string{
	PermissionBluetooth,
	PermissionBluetoothAdmin,
	PermissionBluetoothAdvertise,
	PermissionBluetoothConnect,
	PermissionBluetoothScan,
	PermissionAccessFineLocation,
	PermissionAccessCoarseLocation,
	PermissionForegroundService,
}

// BackgroundModes lists the UIBackgroundModes tokens in insertion order.
var BackgroundModes = []string{
	ModeBluetoothCentral,
	ModeBluetoothPeripheral,
}

// UsageDescriptionKeys lists the set-if-absent plist keys in insertion order.
var UsageDescriptionKeys = []string{
	KeyBluetoothAlwaysUsage,
	KeyBluetoothPeripheralUsage,
}

var defaultDescriptions = map[string]string{
	KeyBluetoothAlwaysUsage:     DefaultAlwaysUsageDescription,
	KeyBluetoothPeripheralUsage: DefaultPeripheralUsageDescription,
}

// DefaultDescription returns the built-in text for a usage-description key.
func DefaultDescription(key string) (string, bool) {
	text, ok := defaultDescriptions[key]
	return text, ok
}
