package utilities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockConfigJson struct {
	Name  string `json:"name"`
	Debug bool   `json:"debug"`
}

type mockConfig struct {
	Name  string
	Debug bool
}

func (mcj mockConfigJson) ConvertToDomain() mockConfig {
	return mockConfig{Name: mcj.Name, Debug: mcj.Debug}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"name":"portal","debug":true}`), 0o600)
	assert.NoError(t, err)

	config, err := ReadConfig[mockConfigJson, mockConfig](path)
	assert.NoError(t, err)
	assert.Equal(t, mockConfig{Name: "portal", Debug: true}, config)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig[mockConfigJson, mockConfig]("no-such-config.json")
	assert.Error(t, err)
}

func TestReadConfigMalformedJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte("{not json"), 0o600)
	assert.NoError(t, err)

	_, err = ReadConfig[mockConfigJson, mockConfig](path)
	assert.Error(t, err)
}

func TestConvertJsonArrayToDomain(t *testing.T) {
	jsonItems := []mockConfigJson{{Name: "a"}, {Name: "b", Debug: true}}

	domain := ConvertJsonArrayToDomain[mockConfigJson, mockConfig](jsonItems)
	assert.Equal(t, []mockConfig{{Name: "a"}, {Name: "b", Debug: true}}, domain)

	assert.Nil(t, ConvertJsonArrayToDomain[mockConfigJson, mockConfig](nil))
}

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	assert.Empty(t, Map(nil, func(x int) int { return x }))
}

func TestTernary(t *testing.T) {
	assert.Equal(t, "yes", Ternary(true, "yes", "no"))
	assert.Equal(t, "no", Ternary(false, "yes", "no"))
}

type mockSerializable struct {
	Data string `json:"data"`
}

func (ms mockSerializable) Serialize() ([]byte, error) {
	return Serialize[mockSerializable](ms)
}

func TestSerialize(t *testing.T) {
	var serializable Serializable = mockSerializable{Data: "x"}
	encoded, err := serializable.Serialize()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":"x"}`, string(encoded))
}
