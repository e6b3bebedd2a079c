package ports

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . BroadcastPort,PrivilegePort

// BroadcastPort delivers a resolved announcement to every session participant.
type BroadcastPort interface {
	Say(text string)
}
