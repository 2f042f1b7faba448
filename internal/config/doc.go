// Package config manages user-level settings stored at ~/.bleperm/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the log level and the default Bluetooth usage-description text.
package config
