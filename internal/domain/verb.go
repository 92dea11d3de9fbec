package domain

type Verb int

const (
	Encrypt Verb = iota
	Decrypt
)

const (
	KeywordEncrypt = "ENCRIPTAR"
	KeywordDecrypt = "DESENCRIPTAR"
	KeywordDetect  = "DETECTAR"
	KeywordUsing   = "USANDO"
	KeywordWith    = "COM"
	KeywordKey     = "CHAVE"
)

// ParseVerb maps an action keyword to its Verb.
func ParseVerb(keyword string) (Verb, bool) {
	switch keyword {
	case KeywordEncrypt:
		return Encrypt, true
	case KeywordDecrypt:
		return Decrypt, true
	default:
		return 0, false
	}
}

func (v Verb) String() string {
	switch v {
	case Encrypt:
		return KeywordEncrypt
	case Decrypt:
		return KeywordDecrypt
	default:
		return "UNKNOWN"
	}
}
