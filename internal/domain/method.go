package domain

// Method is the normalized keyword naming a cipher. It stays a raw keyword until
// interpretation, so an unsupported name is only rejected when the command executes.
type Method string

const (
	MethodCaesar       Method = "CESAR"
	MethodVigenere     Method = "VIGENERE"
	MethodXOR          Method = "XOR"
	MethodBase64       Method = "BASE64"
	MethodSubstitution Method = "SUBSTITUICAO"
)

var SupportedMethods = []Method{
	MethodCaesar,
	MethodVigenere,
	MethodXOR,
	MethodBase64,
	MethodSubstitution,
}

func (m Method) Supported() bool {
	for _, s := range SupportedMethods {
		if s == m {
			return true
		}
	}
	return false
}

func (m Method) String() string {
	return string(m)
}
