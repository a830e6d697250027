package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/crm-clientes/pkg/document"
)

func TestCleanCPF_Validos(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"529.982.247-25", "52998224725"},
		{"52998224725", "52998224725"},
		{"111.444.777-35", "11144477735"},
		{" 529 982 247 25 ", "52998224725"},
	}
	for _, tc := range cases {
		got, err := document.CleanCPF(tc.raw)
		require.NoError(t, err, "CPF %q deveria ser válido", tc.raw)
		assert.Equal(t, tc.want, got)
	}
}

func TestCleanCPF_Invalidos(t *testing.T) {
	cases := []string{
		"",
		"123",
		"11111111111",          // todos os dígitos iguais
		"00000000000",          // idem
		"529.982.247-26",       // segundo verificador errado
		"529.982.247-15",       // primeiro verificador errado
		"529982247250",         // 12 dígitos
		"abc",                  // sem dígitos
	}
	for _, raw := range cases {
		_, err := document.CleanCPF(raw)
		assert.ErrorIs(t, err, document.ErrInvalidCPF, "CPF %q deveria ser rejeitado", raw)
	}
}

// TestCleanCPF_DigitoTrocado verifica a sensibilidade do checksum: trocar
// qualquer dígito verificador de um CPF válido deve invalidá-lo.
func TestCleanCPF_DigitoTrocado(t *testing.T) {
	valid := "52998224725"
	for d := byte('0'); d <= '9'; d++ {
		if d == valid[10] {
			continue
		}
		mutated := valid[:10] + string(d)
		_, err := document.CleanCPF(mutated)
		assert.Error(t, err, "CPF %q com verificador trocado deveria ser rejeitado", mutated)
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", document.FormatCPF("52998224725"))
}

// Ida e volta: formatar e limpar devolve o mesmo valor normalizado.
func TestFormatCPF_RoundTrip(t *testing.T) {
	clean, err := document.CleanCPF(document.FormatCPF("11144477735"))
	require.NoError(t, err)
	assert.Equal(t, "11144477735", clean)
}
