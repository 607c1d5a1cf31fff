package tagsoup

type parseFlags uint16

const (
	flagRecover parseFlags = 1 << iota
	flagKeepBlanks
	flagDefaultDTD
	flagIgnoreEncoding
	flagNoImplied
	flagHTML5Entities
	flagPedantic
)

const defaultFlags = flagRecover | flagKeepBlanks

func (p *parseFlags) Set(n parseFlags) {
	*p = *p | n
}

func (p *parseFlags) Unset(n parseFlags) {
	*p = *p &^ n
}

// Toggle sets n when v is true and clears it otherwise.
func (p *parseFlags) Toggle(n parseFlags, v bool) {
	if v {
		p.Set(n)
	} else {
		p.Unset(n)
	}
}

func (p parseFlags) IsSet(n parseFlags) bool {
	return p&n != 0
}
