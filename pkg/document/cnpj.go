package document

import "errors"

// ErrInvalidCNPJ indica CNPJ com tamanho ou dígitos verificadores incorretos.
var ErrInvalidCNPJ = errors.New("CNPJ inválido")

// Pesos dos dígitos verificadores do CNPJ (Receita Federal).
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CleanCNPJ remove tudo que não é dígito e valida. Aceita
// "11.222.333/0001-81" ou "11222333000181"; devolve os 14 dígitos normalizados.
func CleanCNPJ(raw string) (string, error) {
	digits := extractDigits(raw)
	if !validCNPJ(digits) {
		return "", ErrInvalidCNPJ
	}
	return digits, nil
}

// validCNPJ verifica tamanho, sequências repetidas e os dois dígitos
// verificadores módulo 11. O segundo dígito é calculado sobre os 13 primeiros,
// incluindo o primeiro verificador já conferido.
func validCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	if allSameDigit(cnpj) {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(cnpj[i]-'0') * cnpjWeights1[i]
	}
	if int(cnpj[12]-'0') != checkDigit(sum) {
		return false
	}
	sum = 0
	for i := 0; i < 13; i++ {
		sum += int(cnpj[i]-'0') * cnpjWeights2[i]
	}
	return int(cnpj[13]-'0') == checkDigit(sum)
}

// FormatCNPJ devolve a representação usual 00.000.000/0000-00.
// Assume entrada já normalizada (14 dígitos).
func FormatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return cnpj[:2] + "." + cnpj[2:5] + "." + cnpj[5:8] + "/" + cnpj[8:12] + "-" + cnpj[12:]
}
