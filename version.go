package symdq

// Version is the release of the module. Builds may override it with
// -ldflags "-X github.com/aretw0/symdq.Version=...".
var Version = "0.1.0"
