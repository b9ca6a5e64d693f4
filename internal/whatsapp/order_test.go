package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() Order {
	return Order{
		StoreName: "SS Collections",
		Currency:  "Rs",
		Number:    "ORD-1700000000",
		Items: []OrderItem{
			{Name: "Linen Kurta", Price: 500, Quantity: 2, Size: "M", Color: "white"},
			{Name: "Silk Dupatta", Price: 1000, Quantity: 1},
		},
		Total: 2000,
	}
}

func TestMessageFormat(t *testing.T) {
	msg := testOrder().Message()

	assert.Contains(t, msg, "*New Order from SS Collections*")
	assert.Contains(t, msg, "Order #: ORD-1700000000")
	assert.Contains(t, msg, "1. *Linen Kurta*")
	assert.Contains(t, msg, "Price: Rs 500")
	assert.Contains(t, msg, "Quantity: 2")
	assert.Contains(t, msg, "Size: M")
	assert.Contains(t, msg, "Color: white")
	assert.Contains(t, msg, "Subtotal: Rs 1000")
	assert.Contains(t, msg, "*Total Amount: Rs 2000*")

	// 没选尺码/颜色的行不出对应字段
	second := msg[strings.Index(msg, "2. *Silk Dupatta*"):]
	assert.NotContains(t, second, "Size:")
	assert.NotContains(t, second, "Color:")
}

func TestLink(t *testing.T) {
	link := testOrder().Link("923001234567")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/923001234567?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	// text 参数解出来要和原文一致
	assert.Equal(t, testOrder().Message(), u.Query().Get("text"))
}
