// Package config loads the settings of the todo server and terminal client.
//
// Values are read from the environment, then command-line flags, then a
// JSON file named by -c or CONFIG; a later source overrides the fields it
// sets. Defaults fill whatever is still empty. [GetStructuredConfig] returns
// the validated server view and [GetClientConfig] the client view.
package config
