package backend

// Provider bundles every remote API facade so wiring code can pass the
// whole backend surface around as one value.
type Provider struct {
	Auth     AuthAPI
	Session  SessionAPI
	Journals JournalAPI
	Entries  EntryAPI
	Users    UserAPI
	Settings SettingsAPI
	Search   SearchAPI
}
