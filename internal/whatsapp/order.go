package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// OrderItem 已经核过价的订单行
type OrderItem struct {
	Name     string
	Price    float64
	Quantity int
	Size     string
	Color    string
}

type Order struct {
	StoreName string
	Currency  string
	Number    string
	Items     []OrderItem
	Total     float64
}

// Message 组装发给店家的订单文本；格式沿用店铺既有话术
func (o Order) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ *New Order from %s*\n", o.StoreName)
	fmt.Fprintf(&b, "📋 Order #: %s\n", o.Number)
	fmt.Fprintf(&b, "📅 Date: %s\n\n", time.Now().Format("2006-01-02"))

	b.WriteString("📦 *Order Details:*\n")
	b.WriteString(strings.Repeat("─", 30) + "\n")
	for i, it := range o.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, it.Name)
		fmt.Fprintf(&b, "   💰 Price: %s %.0f\n", o.Currency, it.Price)
		fmt.Fprintf(&b, "   📊 Quantity: %d\n", it.Quantity)
		if it.Size != "" {
			fmt.Fprintf(&b, "   📏 Size: %s\n", it.Size)
		}
		if it.Color != "" {
			fmt.Fprintf(&b, "   🎨 Color: %s\n", it.Color)
		}
		fmt.Fprintf(&b, "   💵 Subtotal: %s %.0f\n\n", o.Currency, it.Price*float64(it.Quantity))
	}
	b.WriteString(strings.Repeat("─", 30) + "\n")
	fmt.Fprintf(&b, "💰 *Total Amount: %s %.0f*\n\n", o.Currency, o.Total)

	b.WriteString("📝 *Next Steps:*\n")
	b.WriteString("✅ Please confirm this order\n")
	b.WriteString("📍 Provide shipping address\n")
	b.WriteString("💳 Discuss payment method\n")
	b.WriteString("🚚 Get shipping cost & delivery time\n\n")
	fmt.Fprintf(&b, "📞 Thank you for choosing %s!\n", o.StoreName)
	b.WriteString("We'll respond with confirmation shortly. 😊")
	return b.String()
}

// Link wa.me 深链；phone 国际格式不带 +
func (o Order) Link(phone string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(o.Message()))
}
