package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "零分", input: "0", want: 0, ok: true},
		{name: "满分", input: "1", want: 1, ok: true},
		{name: "小数", input: "0.85", want: 0.85, ok: true},
		{name: "带空白", input: "  0.9\n", want: 0.9, ok: true},
		{name: "百分制换算", input: "85", want: 0.85, ok: true},
		{name: "百分制满分", input: "100", want: 1, ok: true},
		{name: "负数", input: "-0.5", want: 0, ok: false},
		{name: "超出刻度", input: "120", want: 0, ok: false},
		{name: "非数字", input: "The translation is good.", want: 0, ok: false},
		{name: "空字符串", input: "", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseScore(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
