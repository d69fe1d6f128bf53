package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `sku,name,price,category,brand,source,url,image,description,specifications,key_features,warranty_info
LAP-001,Gaming Laptop X1,"24,499৳28,100৳",Laptop,ASUS,StarTech,https://x/p,https://x/i,Fast laptop,"{""Processor"": ""i5-13500H"", ""RAM"": ""16GB DDR5""}","[""RGB keyboard"", ""144Hz""]",2 years
,Budget Mouse,"450৳",Accessories,Logitech,Daraz,,,,,,
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "LAP-001", first.SKU)
	assert.Equal(t, "Gaming Laptop X1", first.Name)
	assert.Equal(t, "24,499৳28,100৳", first.Price)
	assert.Equal(t, map[string]string{
		"Processor": "i5-13500H",
		"RAM":       "16GB DDR5",
	}, first.Specifications)
	assert.Equal(t, []string{"RGB keyboard", "144Hz"}, first.KeyFeatures)
	assert.Equal(t, "2 years", first.Warranty)

	second := records[1]
	assert.Equal(t, 1, second.Index)
	assert.Empty(t, second.SKU)
	assert.Nil(t, second.Specifications)
	assert.Nil(t, second.KeyFeatures)
}

func TestReadRecords_MalformedEmbeddedJSON(t *testing.T) {
	csv := "name,price,specifications,key_features\n" +
		"Widget,100,not-json,also-not-json\n"

	records, err := ReadRecords(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Specifications)
	assert.Nil(t, records[0].KeyFeatures)
}

func TestReadRecords_MissingColumns(t *testing.T) {
	csv := "name,price\nWidget,100\n"

	records, err := ReadRecords(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Category)
	assert.Empty(t, records[0].Warranty)
}

func TestReadRecords_EmptyHeader(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""))
	assert.Error(t, err)
}
