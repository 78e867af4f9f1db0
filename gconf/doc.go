/*
Package gconf provides a toolset for managing an extension configuration.

Each extension declares its configuration as a protobuf message with a
Validate method. The configuration is read from the genesis file options under
the "conf" key and persisted in the store under a key derived from the
extension package name. Handlers load it from the store when they are built
or executed.
*/
package gconf
