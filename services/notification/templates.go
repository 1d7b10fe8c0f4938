package notification

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"bookify/models"
)

// UserNoticeHTML renders the customer-facing confirmation for a booking.
// Pure function of the record (plus the footer year); no I/O.
func UserNoticeHTML(b models.BookingRecord) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #eaeaea; border-radius: 10px;">`)
	sb.WriteString(`<div style="background: linear-gradient(90deg, #007bff, #00c4ff); color: white; padding: 20px; text-align: center;">`)
	sb.WriteString(`<h2 style="margin: 0;">Booking Confirmation</h2>`)
	sb.WriteString(`<p style="margin: 5px 0 0; font-size: 14px;">Thank you for choosing our services!</p>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div style="padding: 20px; color: #333;">`)
	sb.WriteString(fmt.Sprintf(`<p>Dear <strong>%s</strong>,</p>`, b.User.Name))
	sb.WriteString(`<p>Your booking has been successfully recorded. Below are the details:</p>`)

	sb.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	writeRow(&sb, "Booking ID", b.BookingID)
	writeRow(&sb, "Service", fmt.Sprintf("%s (%s)", b.ServiceTitle, b.ServiceType))
	writeRow(&sb, "Date", b.Date)
	writeRow(&sb, "Time", timeCell(b))
	writeExtraRows(&sb, b.User.Extra)
	sb.WriteString(`</table>`)

	sb.WriteString(`<p style="margin-top: 20px;">If you have any questions, feel free to reply to this email.</p>`)
	sb.WriteString(fmt.Sprintf(`<p style="font-size: 13px; color: #777;">Created on: %s</p>`, b.CreatedAtUTC))
	sb.WriteString(`</div>`)

	sb.WriteString(fmt.Sprintf(`<div style="background: #f4f4f4; color: #666; text-align: center; padding: 10px; font-size: 12px;">&copy; %d Service Booking System</div>`, time.Now().Year()))
	sb.WriteString(`</div>`)
	return sb.String()
}

// AdminNoticeHTML renders the administrator-facing notice, which adds the
// customer's contact details to the booking summary.
func AdminNoticeHTML(b models.BookingRecord) string {
	phone := b.User.Phone
	if phone == "" {
		phone = "-"
	}

	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 700px; margin: auto; border: 1px solid #eaeaea; border-radius: 10px;">`)
	sb.WriteString(`<div style="background: linear-gradient(90deg, #ff6a00, #ffcc00); color: white; padding: 20px; text-align: center;">`)
	sb.WriteString(`<h2 style="margin: 0;">New Booking Received</h2>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div style="padding: 20px; color: #333;">`)
	sb.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	writeRow(&sb, "Booking ID", b.BookingID)
	writeRow(&sb, "Service", fmt.Sprintf("%s (%s)", b.ServiceTitle, b.ServiceType))
	writeRow(&sb, "Date", b.Date)
	writeRow(&sb, "Time", timeCell(b))
	writeRow(&sb, "Customer", b.User.Name)
	writeRow(&sb, "Email", b.User.Email)
	writeRow(&sb, "Phone", phone)
	writeExtraRows(&sb, b.User.Extra)
	sb.WriteString(`</table>`)

	sb.WriteString(fmt.Sprintf(`<p style="margin-top: 20px; font-size: 13px; color: #555;">Created on: %s</p>`, b.CreatedAtUTC))
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func timeCell(b models.BookingRecord) string {
	if b.EndTime != "" {
		return b.StartTime + " - " + b.EndTime
	}
	return b.StartTime
}

func writeRow(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf(`<tr><td><b>%s:</b></td><td>%s</td></tr>`, label, value))
}

// writeExtraRows appends one table row per extra field, in key order so the
// output is stable. Values go in verbatim; the embedding site owns them.
func writeExtraRows(sb *strings.Builder, extra map[string]string) {
	if len(extra) == 0 {
		return
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeRow(sb, humanizeKey(k), extra[k])
	}
}

// humanizeKey turns a camelCase field name into a label by inserting a
// space before each internal capital: "companyName" becomes "company Name".
func humanizeKey(key string) string {
	var sb strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
