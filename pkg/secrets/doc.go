// Package secrets encrypts small secrets at rest with AES-256-GCM.
//
// A per-label data key is derived from a 32-byte master key using
// HKDF-SHA-256, so one master key can protect several independent secrets
// (for example "token-signing" and "webhook"). The label is also bound to the
// ciphertext as GCM additional data. The random nonce is prepended to the
// output, making every blob self-contained.
//
// # Usage
//
//	master, _ := secrets.GenerateKey()
//
//	blob, err := secrets.EncryptString(master, "token-signing", "topsecret")
//	plain, err := secrets.DecryptString(master, "token-signing", blob)
//
// secretsource.Encrypted uses DecryptBytes to unwrap signing secrets kept in
// files, Redis or S3.
//
// All errors wrap one of the package sentinels; match them with errors.Is.
package secrets
