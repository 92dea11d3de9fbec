// Package cipher implements the classical ciphers of CryptoLang.
//
// Every method is exposed twice: as a pure function (Caesar, Vigenere, XOR,
// Base64Encode/Base64Decode, Substitute) and as an Operation registered in a
// Registry keyed by the method keyword. Operations validate the key kind
// late, at execution time, and report mismatches as apperr type errors.
//
//	reg := cipher.DefaultRegistry()
//	out, err := reg.Apply(domain.MethodCaesar, "Ola Mundo", domain.IntKey(3), domain.Encrypt)
//	// out: "Ron Pxqgr"
//
// Only the ASCII letters A-Z and a-z are rotated or substituted; every other
// character, accented letters included, passes through unchanged.
//
// Operations are stateless and the registry is read-only after construction,
// so both are safe for concurrent use.
package cipher
