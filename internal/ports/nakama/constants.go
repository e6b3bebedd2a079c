package nakama

const (
	// RpcSpree is the Nakama RPC id for the spree query command.
	RpcSpree = "spree"
	// RpcSpreeReload is the Nakama RPC id that reloads the spree settings file.
	RpcSpreeReload = "spree_reload"
	// RpcFindMatch returns a running spree match, creating one when none is listed.
	RpcFindMatch = "spree_find_match"

	// MatchNameSpree is the authoritative match handler name registered with Nakama.
	MatchNameSpree = "spree_match"

	// MatchLabelGame identifies spree matches in match listings.
	MatchLabelGame = "spree"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpKillReported int64 = 1
	OpSessionEnded int64 = 2

	// Server -> Client events
	OpSpreeAnnouncement int64 = 101
	OpSpreeReport       int64 = 102
	OpPlayerNotice      int64 = 103
)

// Payload field names shared by the codec and the RPC handlers.
const (
	fieldAttacker = "attacker"
	fieldVictim   = "victim"
	fieldTarget   = "target"
	fieldID       = "id"
	fieldText     = "text"
	fieldKind     = "kind"
	fieldCount    = "count"
)
