package internal

// Version is the current yidspeak release version
const Version = "0.1.0"
