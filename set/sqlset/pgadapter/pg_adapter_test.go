package pgadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	a := &adapter{}
	n, err := a.TableName("weather")
	assert.NoError(t, err)
	assert.Equal(t, `"weather"`, n)
	n, err = a.TableName("public.weather")
	assert.NoError(t, err)
	assert.Equal(t, `"public"."weather"`, n)
	for _, bad := range []string{"", `we"ather`, "a.b.c", "public."} {
		_, err = a.TableName(bad)
		assert.Error(t, err, bad)
	}
}
