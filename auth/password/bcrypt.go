// Package password encapsula o hash de senhas. Para o resto da aplicação é
// um primitivo opaco: entra senha em claro, sai hash; entra (hash, senha),
// sai confere/não confere.
package password

import "golang.org/x/crypto/bcrypt"

func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
