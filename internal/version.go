package internal

// Version is the readable-password release version.
const Version = "0.5.0"
