// Package unitconv converts values between units of the same physical
// quantity and serves conversions on the command line or over MQTT.
//
// The conversion engine lives in package [github.com/lone-faerie/unitconv/units].
// This package provides the request and result types shared by the command
// line and the MQTT bridge, along with a catalog of every supported quantity.
//
// Configuration can be loaded from multiple YAML files, including from directories.
// If no config file is specified, the default path(s) will be determined by the first
// defined value of $UNITCONV_CONFIG_PATH, $XDG_CONFIG_HOME/unitconv.yaml, or
// $HOME/.config/unitconv.yaml. If none of these files exist, the default configuration
// will be used, which looks for the following environment variables:
//
//   - broker:   $UNITCONV_BROKER_ADDRESS
//   - username: $UNITCONV_BROKER_USERNAME
//   - password: $UNITCONV_BROKER_PASSWORD
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/unitconv
package unitconv
