package constants

const Version = "0.1.0"
