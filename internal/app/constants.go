package app

// Opening words of spree reports about the caller's own spree.
const (
	PhraseSelfHave = "You have"
	PhraseSelfBe   = "You're"
)
