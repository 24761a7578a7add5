package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thomas/popcorn-terminal/internal/pricing"
	"github.com/thomas/popcorn-terminal/internal/productpage"
)

// View renders the current view.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.viewState {
	case ViewPageList:
		content = m.viewPageList()
	case ViewProduct:
		content = m.viewProduct()
	case ViewReview:
		content = m.viewReview()
	case ViewCart:
		content = m.viewCart()
	}
	return m.styles.App.Render(content)
}

func (m Model) cartBadge() string {
	if m.cartCount == 0 {
		return ""
	}
	return m.styles.Subtle.Render(fmt.Sprintf("  cart: %d", m.cartCount))
}

func (m Model) viewPageList() string {
	var sb strings.Builder
	sb.WriteString(m.pageList.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("enter open • / filter • c cart • q quit" + m.cartBadge()))
	return sb.String()
}

func (m Model) viewProduct() string {
	s := m.screen
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.styles.HeaderTitle.Render(m.page.Title) + m.cartBadge()))
	sb.WriteString("\n")

	sb.WriteString(m.renderGallery())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderField(fieldFlavor, "Flavor", m.renderFlavor()))
	if s.sizesVisible {
		sb.WriteString(m.renderField(fieldSize, "Size", m.renderSizes()))
	}
	if s.quantityVisible {
		sb.WriteString(m.renderField(fieldQuantity, "Quantity", "[-] "+s.quantity.View()+" [+]"))
	}
	sb.WriteString(m.styles.Label.Render("Price"))
	sb.WriteString(m.styles.Price.Render(s.price))
	sb.WriteString("\n")

	if p := m.logic.Selector.Product(); p != nil {
		if desc := plainText(p.Description); desc != "" {
			sb.WriteString(m.styles.ProductDescription.Render(desc))
			sb.WriteString("\n")
		}
	}

	for _, msg := range []message{s.cartMsg, s.reviewMsg} {
		if line := m.renderMessage(msg); line != "" {
			sb.WriteString("\n")
			sb.WriteString(line)
		}
	}
	if s.alert != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Highlight.Render(s.alert))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("tab focus • ←/→ choose • -/+ quantity • [ ] images • 1-9 jump • enter add to cart • r review • c cart • esc back"))
	return sb.String()
}

func (m Model) renderGallery() string {
	s := m.screen
	if len(s.thumbs) == 0 {
		return m.styles.Subtle.Render("No images")
	}

	var img string
	if s.mainVisible {
		img = m.styles.Image.Render(s.mainAlt + "\n" + m.styles.Subtle.Render(s.mainSrc))
	} else {
		img = m.styles.ImageFading.Render("…")
	}

	thumbs := make([]string, len(s.thumbs))
	for i, t := range s.thumbs {
		style := m.styles.Thumbnail
		if t.active {
			style = m.styles.ThumbnailActive
		}
		thumbs[i] = style.Render(fmt.Sprintf("%d", i+1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, img, lipgloss.JoinHorizontal(lipgloss.Top, thumbs...))
}

func (m Model) renderField(f field, label, body string) string {
	style := m.styles.Label
	if m.screen.focus == f {
		style = m.styles.LabelFocused
	}
	return style.Render(label) + body + "\n"
}

func (m Model) renderFlavor() string {
	s := m.screen
	if len(s.flavors) == 0 {
		return ""
	}
	opt := s.flavors[s.flavorIdx]
	style := m.styles.Option
	if opt.Value != "" {
		style = m.styles.OptionChosen
	}
	return "‹ " + style.Render(opt.Label) + " ›"
}

func (m Model) renderSizes() string {
	parts := make([]string, len(pricing.Sizes))
	for i, size := range pricing.Sizes {
		if size == m.screen.checkedSize {
			parts[i] = m.styles.OptionChosen.Render("(•) " + string(size))
		} else {
			parts[i] = m.styles.Option.Render("( ) " + string(size))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderMessage(msg message) string {
	switch msg.kind {
	case productpage.MessageSuccess:
		return m.styles.Success.Render(msg.text)
	case productpage.MessageError:
		return m.styles.Error.Render(msg.text)
	}
	return msg.text
}

func (m Model) viewReview() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(m.styles.HeaderTitle.Render("Review: " + m.page.Title)))
	sb.WriteString("\n")
	sb.WriteString(m.screen.reviewForm.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("tab next • enter submit • esc cancel"))
	return m.styles.Box.Render(sb.String())
}

func (m Model) viewCart() string {
	var sb strings.Builder
	sb.WriteString(m.styles.HeaderTitle.Render("Shopping Cart"))
	sb.WriteString("\n\n")

	if len(m.cartKeys) == 0 {
		sb.WriteString(m.styles.Subtle.Render("Your cart is empty"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.HelpBar.Render("esc back"))
		return m.styles.Box.Render(sb.String())
	}

	for i, key := range m.cartKeys {
		item := m.cartLines[key]
		line := fmt.Sprintf("%s (%s)  %s  x%d  = %s",
			item.Name, item.SizeLabel(), pricing.Money(item.PricePerItem), item.Quantity, pricing.Money(item.Total()))
		if i == m.cartIdx {
			sb.WriteString(m.styles.Highlight.Render("▸ " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render("Subtotal: " + pricing.Money(m.cartLines.Subtotal())))
	sb.WriteString(fmt.Sprintf(" (%d items)", m.cartLines.ItemCount()))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("Could not update the cart, try again."))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.HelpBar.Render("↑/↓ select • d remove • esc back"))
	return m.styles.Box.Render(sb.String())
}
