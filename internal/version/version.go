package version

// Version is stamped at release time via -ldflags "-X ...".
var Version = "dev"
