// Package document valida os documentos fiscais brasileiros suportados pelo
// cadastro: CPF (pessoa física, 11 dígitos) e CNPJ (pessoa jurídica, 14
// dígitos). Ambos usam dígitos verificadores módulo 11 com pesos fixos.
// Funções puras, sem I/O.
package document

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidCPF indica CPF com tamanho ou dígitos verificadores incorretos.
var ErrInvalidCPF = errors.New("CPF inválido")

// CleanCPF remove tudo que não é dígito e valida. Aceita "529.982.247-25"
// ou "52998224725"; devolve sempre os 11 dígitos normalizados.
func CleanCPF(raw string) (string, error) {
	digits := extractDigits(raw)
	if !validCPF(digits) {
		return "", ErrInvalidCPF
	}
	return digits, nil
}

// validCPF verifica tamanho, sequências repetidas e os dois dígitos
// verificadores. Primeiro dígito: pesos 10..2 sobre as posições 0..8;
// segundo: pesos 11..2 sobre as posições 0..9. Resto < 2 vira dígito 0.
func validCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	if allSameDigit(cpf) {
		return false
	}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if int(cpf[9]-'0') != checkDigit(sum) {
		return false
	}
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	return int(cpf[10]-'0') == checkDigit(sum)
}

// FormatCPF devolve a representação usual 000.000.000-00.
// Assume entrada já normalizada (11 dígitos).
func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// checkDigit aplica a regra módulo 11: resto < 2 → 0, senão 11 - resto.
func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allSameDigit(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
