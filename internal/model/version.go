package model

// Version is the released version of the tool, used by --version and the
// update check.
const Version = "0.3.0"
