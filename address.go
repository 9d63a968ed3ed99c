package bitcoinaddress

// Address is a bitcoin address in its textual form, either base58-check
// or bech32 encoded.
type Address string

// Network selects which chain parameters an address is validated against.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
