package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// codeTags is shared by bar codes and QR codes: {|name}.
func codeTags(name string) []string {
	return tagSet("{|" + name + "}")
}

// codeDict emits name: data, name_type: codeType and the given suffixes.
func codeDict(name string, data any, codeType string, suffixes ...[]suffix) map[string]any {
	result := expand(name, data, []suffix{{"_type", fixed{codeType}}})
	for _, s := range suffixes {
		addSuffixes(result, name, s)
	}
	return result
}

// BarCode inserts a barcode of Type, e.g. "ean13", "code128", "pdf417".
type BarCode struct {
	base
	Data              string
	Type              string
	Height            optional.Option[int]
	Width             optional.Option[int]
	ErrorCorrectLevel optional.Option[string]
	URL               optional.Option[string]
	Rotation          optional.Option[int]
	BackgroundColor   optional.Option[string]
	PaddingWidth      optional.Option[int]
	PaddingHeight     optional.Option[int]
	ExtraOptions      optional.Option[string]
}

func NewBarCode(name, data, codeType string) *BarCode {
	return &BarCode{base: base{name}, Data: data, Type: codeType}
}

func (b *BarCode) AsDict() map[string]any {
	return codeDict(b.name, b.Data, b.Type, []suffix{
		{"_height", b.Height},
		{"_width", b.Width},
		{"_errorcorrectlevel", b.ErrorCorrectLevel},
		{"_url", b.URL},
		{"_rotation", b.Rotation},
		{"_background_color", b.BackgroundColor},
		{"_padding_width", b.PaddingWidth},
		{"_padding_height", b.PaddingHeight},
		{"_extra_options", b.ExtraOptions},
	})
}

func (b *BarCode) AvailableTags() []string {
	return codeTags(b.name)
}

// QRStyle holds the look of a QR code. It is embedded in every QR code type.
type QRStyle struct {
	ErrorCorrectLevel    optional.Option[string] // L, M, Q or H
	CellSize             optional.Option[int]
	Margin               optional.Option[int]
	Dotscale             optional.Option[float64]
	Logo                 optional.Option[string] // base64 or URL
	BackgroundImage      optional.Option[string]
	ColorDark            optional.Option[string]
	ColorLight           optional.Option[string]
	LogoWidth            optional.Option[int]
	LogoHeight           optional.Option[int]
	LogoBackgroundColor  optional.Option[string]
	QuietZone            optional.Option[int]
	QuietZoneColor       optional.Option[string]
	BackgroundImageAlpha optional.Option[float64]
	POColor              optional.Option[string]
	PIColor              optional.Option[string]
	POTL                 optional.Option[string]
	PITL                 optional.Option[string]
	POTR                 optional.Option[string]
	PITR                 optional.Option[string]
	POBL                 optional.Option[string]
	PIBL                 optional.Option[string]
	TimingV              optional.Option[string]
	TimingH              optional.Option[string]
	Timing               optional.Option[string]
	AutoColor            optional.Option[bool]
	AutoColorDark        optional.Option[string]
	AutoColorLight       optional.Option[string]
}

func (s *QRStyle) suffixes() []suffix {
	return []suffix{
		{"_errorcorrectlevel", s.ErrorCorrectLevel},
		{"_cellsize", s.CellSize},
		{"_margin", s.Margin},
		{"_qr_dotscale", s.Dotscale},
		{"_qr_logo", s.Logo},
		{"_qr_background_image", s.BackgroundImage},
		{"_qr_color_dark", s.ColorDark},
		{"_qr_color_light", s.ColorLight},
		{"_qr_logo_width", s.LogoWidth},
		{"_qr_logo_height", s.LogoHeight},
		{"_qr_logo_background_color", s.LogoBackgroundColor},
		{"_qr_quiet_zone", s.QuietZone},
		{"_qr_quiet_zone_color", s.QuietZoneColor},
		{"_qr_background_image_alpha", s.BackgroundImageAlpha},
		{"_qr_po_color", s.POColor},
		{"_qr_pi_color", s.PIColor},
		{"_qr_po_tl", s.POTL},
		{"_qr_pi_tl", s.PITL},
		{"_qr_po_tr", s.POTR},
		{"_qr_pi_tr", s.PITR},
		{"_qr_po_bl", s.POBL},
		{"_qr_pi_bl", s.PIBL},
		{"_qr_timing_v", s.TimingV},
		{"_qr_timing_h", s.TimingH},
		{"_qr_timing", s.Timing},
		{"_qr_auto_color", s.AutoColor},
		{"_qr_auto_color_dark", s.AutoColorDark},
		{"_qr_auto_color_light", s.AutoColorLight},
	}
}

// QRCode encodes arbitrary data as a QR code.
type QRCode struct {
	base
	Data string
	QRStyle
}

func NewQRCode(name, data string) *QRCode {
	return &QRCode{base: base{name}, Data: data}
}

func (q *QRCode) AsDict() map[string]any {
	return codeDict(q.name, q.Data, "qrcode", q.QRStyle.suffixes())
}

func (q *QRCode) AvailableTags() []string {
	return codeTags(q.name)
}

// WiFiQRCode lets a phone join a wireless network.
type WiFiQRCode struct {
	base
	SSID       string
	Encryption string // WPA, WEP or nopass
	Password   optional.Option[string]
	Hidden     optional.Option[bool]
	QRStyle
}

func NewWiFiQRCode(name, ssid, encryption string) *WiFiQRCode {
	return &WiFiQRCode{base: base{name}, SSID: ssid, Encryption: encryption}
}

func (w *WiFiQRCode) AsDict() map[string]any {
	return codeDict(w.name, w.SSID, "qr_wifi", []suffix{
		{"_wifi_encryption", fixed{w.Encryption}},
		{"_wifi_password", w.Password},
		{"_wifi_hidden", w.Hidden},
	}, w.QRStyle.suffixes())
}

func (w *WiFiQRCode) AvailableTags() []string {
	return codeTags(w.name)
}

// TelephoneNumberQRCode dials a number.
type TelephoneNumberQRCode struct {
	base
	Number string
	QRStyle
}

func NewTelephoneNumberQRCode(name, number string) *TelephoneNumberQRCode {
	return &TelephoneNumberQRCode{base: base{name}, Number: number}
}

func (t *TelephoneNumberQRCode) AsDict() map[string]any {
	return codeDict(t.name, t.Number, "qr_telephone", t.QRStyle.suffixes())
}

func (t *TelephoneNumberQRCode) AvailableTags() []string {
	return codeTags(t.name)
}

// EmailQRCode opens a prefilled e-mail.
type EmailQRCode struct {
	base
	Receiver string
	CC       optional.Option[string]
	BCC      optional.Option[string]
	Subject  optional.Option[string]
	Body     optional.Option[string]
	QRStyle
}

func NewEmailQRCode(name, receiver string) *EmailQRCode {
	return &EmailQRCode{base: base{name}, Receiver: receiver}
}

func (e *EmailQRCode) AsDict() map[string]any {
	return codeDict(e.name, e.Receiver, "qr_email", []suffix{
		{"_email_cc", e.CC},
		{"_email_bcc", e.BCC},
		{"_email_subject", e.Subject},
		{"_email_body", e.Body},
	}, e.QRStyle.suffixes())
}

func (e *EmailQRCode) AvailableTags() []string {
	return codeTags(e.name)
}

// SMSQRCode opens a prefilled text message.
type SMSQRCode struct {
	base
	Receiver string
	Body     optional.Option[string]
	QRStyle
}

func NewSMSQRCode(name, receiver string) *SMSQRCode {
	return &SMSQRCode{base: base{name}, Receiver: receiver}
}

func (s *SMSQRCode) AsDict() map[string]any {
	return codeDict(s.name, s.Receiver, "qr_sms", []suffix{
		{"_sms_body", s.Body},
	}, s.QRStyle.suffixes())
}

func (s *SMSQRCode) AvailableTags() []string {
	return codeTags(s.name)
}

// URLQRCode opens a web page.
type URLQRCode struct {
	base
	URL string
	QRStyle
}

func NewURLQRCode(name, url string) *URLQRCode {
	return &URLQRCode{base: base{name}, URL: url}
}

func (u *URLQRCode) AsDict() map[string]any {
	return codeDict(u.name, u.URL, "qr_url", u.QRStyle.suffixes())
}

func (u *URLQRCode) AvailableTags() []string {
	return codeTags(u.name)
}

// VCardQRCode shares a contact as a vCard.
type VCardQRCode struct {
	base
	FirstName string
	LastName  optional.Option[string]
	Email     optional.Option[string]
	Website   optional.Option[string]
	QRStyle
}

func NewVCardQRCode(name, firstName string) *VCardQRCode {
	return &VCardQRCode{base: base{name}, FirstName: firstName}
}

func (v *VCardQRCode) AsDict() map[string]any {
	return codeDict(v.name, v.FirstName, "qr_vcard", []suffix{
		{"_vcard_last_name", v.LastName},
		{"_vcard_email", v.Email},
		{"_vcard_website", v.Website},
	}, v.QRStyle.suffixes())
}

func (v *VCardQRCode) AvailableTags() []string {
	return codeTags(v.name)
}

// MeCardQRCode shares a contact as a MeCard.
type MeCardQRCode struct {
	base
	FirstName        string
	LastName         optional.Option[string]
	Nickname         optional.Option[string]
	Email            optional.Option[string]
	ContactPrimary   optional.Option[string]
	ContactSecondary optional.Option[string]
	ContactTertiary  optional.Option[string]
	Website          optional.Option[string]
	Birthday         optional.Option[string]
	Notes            optional.Option[string]
	QRStyle
}

func NewMeCardQRCode(name, firstName string) *MeCardQRCode {
	return &MeCardQRCode{base: base{name}, FirstName: firstName}
}

func (m *MeCardQRCode) AsDict() map[string]any {
	return codeDict(m.name, m.FirstName, "qr_me_card", []suffix{
		{"_me_card_last_name", m.LastName},
		{"_me_card_nickname", m.Nickname},
		{"_me_card_email", m.Email},
		{"_me_card_contact_primary", m.ContactPrimary},
		{"_me_card_contact_secondary", m.ContactSecondary},
		{"_me_card_contact_tertiary", m.ContactTertiary},
		{"_me_card_website", m.Website},
		{"_me_card_birthday", m.Birthday},
		{"_me_card_notes", m.Notes},
	}, m.QRStyle.suffixes())
}

func (m *MeCardQRCode) AvailableTags() []string {
	return codeTags(m.name)
}

// GeolocationQRCode opens a map location.
type GeolocationQRCode struct {
	base
	Latitude  string
	Longitude optional.Option[string]
	Altitude  optional.Option[string]
	QRStyle
}

func NewGeolocationQRCode(name, latitude string) *GeolocationQRCode {
	return &GeolocationQRCode{base: base{name}, Latitude: latitude}
}

func (g *GeolocationQRCode) AsDict() map[string]any {
	return codeDict(g.name, g.Latitude, "qr_geolocation", []suffix{
		{"_geolocation_longitude", g.Longitude},
		{"_geolocation_altitude", g.Altitude},
	}, g.QRStyle.suffixes())
}

func (g *GeolocationQRCode) AvailableTags() []string {
	return codeTags(g.name)
}

// EventQRCode adds a calendar event.
type EventQRCode struct {
	base
	Summary   string
	StartDate optional.Option[string]
	EndDate   optional.Option[string]
	QRStyle
}

func NewEventQRCode(name, summary string) *EventQRCode {
	return &EventQRCode{base: base{name}, Summary: summary}
}

func (e *EventQRCode) AsDict() map[string]any {
	return codeDict(e.name, e.Summary, "qr_event", []suffix{
		{"_event_startdate", e.StartDate},
		{"_event_enddate", e.EndDate},
	}, e.QRStyle.suffixes())
}

func (e *EventQRCode) AvailableTags() []string {
	return codeTags(e.name)
}
