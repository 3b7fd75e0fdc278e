package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "shifra-server/internal/common/errors"
)

func TestParseCareers(t *testing.T) {
	validJSON := `{"careers":[{"name":"Data Scientist","description":"Works with data","matchPercentage":92,"skills":["Python","SQL"],"avgSalary":"$95,000 - $165,000"}]}`

	tests := []struct {
		name      string
		raw       string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "pure JSON",
			raw:       validJSON,
			wantNames: []string{"Data Scientist"},
		},
		{
			name:      "JSON wrapped in prose",
			raw:       "Sure! Here are my recommendations:\n" + validJSON + "\nLet me know if you need more detail.",
			wantNames: []string{"Data Scientist"},
		},
		{
			name:      "JSON inside markdown fences",
			raw:       "```json\n" + validJSON + "\n```",
			wantNames: []string{"Data Scientist"},
		},
		{
			name:      "brace inside a string field",
			raw:       `{"careers":[{"name":"DevOps Engineer","description":"Handles {infra} configs","matchPercentage":80,"skills":[],"avgSalary":"$100k"}]}`,
			wantNames: []string{"DevOps Engineer"},
		},
		{
			name:    "no JSON at all",
			raw:     "I recommend becoming a data scientist because you like numbers.",
			wantErr: true,
		},
		{
			name:    "unbalanced JSON",
			raw:     `{"careers":[{"name":"Data Scientist"`,
			wantErr: true,
		},
		{
			name:    "object without careers",
			raw:     `{"message":"hello"}`,
			wantErr: true,
		},
		{
			name:    "empty careers list",
			raw:     `{"careers":[]}`,
			wantErr: true,
		},
		{
			name:    "careers with no names",
			raw:     `{"careers":[{"description":"something"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			careers, err := ParseCareers(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, stderrors.ErrCodeLLMMalformedResponse, stderrors.Normalize(err).Code)
				return
			}
			require.NoError(t, err)
			names := make([]string, len(careers))
			for i, c := range careers {
				names[i] = c.Name
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestParseCareers_ClampsMatchPercentage(t *testing.T) {
	raw := `{"careers":[
		{"name":"A","matchPercentage":150,"avgSalary":"x"},
		{"name":"B","matchPercentage":-10,"avgSalary":"y"}
	]}`

	careers, err := ParseCareers(raw)
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, 100, careers[0].MatchPercentage)
	assert.Equal(t, 0, careers[1].MatchPercentage)
}

func TestParseCareers_SkipsNamelessEntries(t *testing.T) {
	raw := `{"careers":[
		{"name":"","matchPercentage":90},
		{"name":"UX Designer","matchPercentage":85}
	]}`

	careers, err := ParseCareers(raw)
	require.NoError(t, err)
	require.Len(t, careers, 1)
	assert.Equal(t, "UX Designer", careers[0].Name)
	assert.NotNil(t, careers[0].Skills)
}

func TestExtractJSONObject_TakesFirstBalancedObject(t *testing.T) {
	raw := `prefix {"a":1} {"b":2} suffix`
	assert.Equal(t, `{"a":1}`, extractJSONObject(raw))
}
