package version

// AppVersion is the govctl release version printed by `govctl version`
// and reported by the status server.
const AppVersion = "0.2.0"
