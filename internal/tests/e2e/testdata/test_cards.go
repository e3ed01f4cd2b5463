package testdata

// Processor test cards understood by the fake processor
type TestCard struct {
	CardNumber  string
	CVC         string
	Expiry      string
	Description string
}

var (
	ValidCard = TestCard{
		CardNumber:  "4242424242424242",
		CVC:         "123",
		Expiry:      "12/30",
		Description: "Happy path card",
	}

	DeclinedCard = TestCard{
		CardNumber:  "4000000000000002",
		CVC:         "123",
		Expiry:      "12/30",
		Description: "Generic decline",
	}

	InsufficientFundsCard = TestCard{
		CardNumber:  "4000000000009995",
		CVC:         "123",
		Expiry:      "12/30",
		Description: "Decline with insufficient_funds",
	}

	ThreeDSecureCard = TestCard{
		CardNumber:  "4000002500003155",
		CVC:         "123",
		Expiry:      "12/30",
		Description: "Requires authentication",
	}
)
