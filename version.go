package lineage

// Version is the library version, stamped into the CLI binary.
var Version = "0.3.0"
