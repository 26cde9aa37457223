// Package config loads and validates machine descriptors for micabox.
//
// # Descriptors
//
// A machine descriptor is a TOML file under a project's machines/
// directory, one file per machine:
//
//	box = "debian/contrib-testing64"
//	box_check_update = false
//
//	[[forwarded_port]]
//	guest = 7072
//	host = 7072
//	host_ip = "127.0.0.1"
//
//	[[provision]]
//	name = "base packages"
//	inline = """
//	apt-get update
//	apt-get install -y git python3 tmux
//	"""
//
// Provision bodies are opaque shell text executed verbatim by the external
// orchestrator, once, at first machine creation. Ordering of both
// forwarded_port and provision lists is preserved end to end.
//
// # Validation
//
// Load validates after parsing: the box image must be non-empty, port
// numbers must be in 1-65535, and host_ip must be an IP literal. Failures
// map onto the exit-code taxonomy in the errors package. Findings that do
// not prevent loading (an empty provision list, duplicate host bindings)
// are returned by Lint as warnings instead.
//
// The loaded ProvisioningConfig is immutable: it is built once from the
// descriptor, handed to the orchestrator, and discarded at process exit.
package config
