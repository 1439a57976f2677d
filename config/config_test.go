package config

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OpenPrinting/goipp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

func TestOutputConfigDefaults(t *testing.T) {
	var out OutputConfig
	assert.Equal(t, map[string]any{
		"output_encoding":  "raw",
		"output_converter": "libreoffice",
	}, out.AsDict())
}

func TestOutputConfigSetEncoding(t *testing.T) {
	out := NewOutputConfig("pdf")
	require.NoError(t, out.SetEncoding("base64"))
	assert.Equal(t, "base64", out.Encoding())

	err := out.SetEncoding("hex")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Equal(t, "base64", out.Encoding(), "a rejected value keeps the previous one")

	assert.ErrorIs(t, out.SetEncoding(""), ErrInvalidEncoding)
}

func TestOutputConfigAsDict(t *testing.T) {
	token, err := NewOAuthToken(Dropbox, "tok")
	require.NoError(t, err)

	out := NewOutputConfig("pdf")
	out.Converter = "officetopdf"
	out.Locale = optional.Some("nl-BE")
	out.UpdateTOC = optional.Some(true)
	out.ServerDirectory = optional.Some("/out")
	out.RequestOption = &RequestOption{URL: "https://example.com/hook", ExtraHeaders: map[string]string{"X-Id": "1"}}
	out.CloudAccessToken = token
	out.CSVOptions = &CsvOptions{FieldSeparator: optional.Some(";")}
	out.PDFOptions = &PDFOptions{Watermark: optional.Some("DRAFT")}

	assert.Equal(t, map[string]any{
		"output_type":      "pdf",
		"output_encoding":  "raw",
		"output_converter": "officetopdf",
		"output_locale":    "nl-BE",
		"update_toc":       true,
		"output_directory": "/out",
		"request_option": map[string]any{
			"url":           "https://example.com/hook",
			"extra_headers": map[string]string{"X-Id": "1"},
		},
		"output_location":        "dropbox",
		"cloud_access_token":     "tok",
		"output_field_separator": ";",
		"output_watermark":       "DRAFT",
	}, out.AsDict())
	assert.NoError(t, out.Validate())

	out.RequestOption.URL = "not a url"
	assert.ErrorIs(t, out.Validate(), ErrInvalidConfig)
}

func TestPDFOptionsMargins(t *testing.T) {
	var pdf PDFOptions
	pdf.SetPageMargin(10)
	assert.Equal(t, map[string]any{"output_page_margin": 10}, pdf.AsDict())

	pdf.SetPageMarginSide(Top, 20)
	assert.Equal(t, map[string]any{
		"output_page_margin_top":    20,
		"output_page_margin_bottom": 10,
		"output_page_margin_left":   10,
		"output_page_margin_right":  10,
	}, pdf.AsDict())
	_, uniform := pdf.PageMargin()
	assert.False(t, uniform)

	pdf.SetPageMargins(map[Side]int{Left: 5})
	assert.Equal(t, map[string]any{"output_page_margin_left": 5}, pdf.AsDict())
	v, ok := pdf.PageMarginSide(Left)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = pdf.PageMarginSide(Right)
	assert.False(t, ok)

	var fresh PDFOptions
	fresh.SetPageMarginSide(Bottom, 3)
	assert.Equal(t, map[string]any{"output_page_margin_bottom": 3}, fresh.AsDict())
}

func TestPDFOptionsUnprefixedKeys(t *testing.T) {
	pdf := PDFOptions{
		Landscape:          optional.Some(false),
		LockForm:           optional.Some(true),
		IdentifyFormFields: optional.Some(true),
		Copies:             optional.Some(2),
		PageWidth:          optional.Some[any]("21cm"),
	}
	assert.Equal(t, map[string]any{
		"page_orientation":     "portrait",
		"lock_form":            true,
		"identify_form_fields": true,
		"output_copies":        2,
		"output_page_width":    "21cm",
	}, pdf.AsDict())
}

func TestCsvOptions(t *testing.T) {
	csv := CsvOptions{
		TextDelimiter:  optional.Some(`"`),
		FieldSeparator: optional.Some(","),
		CharacterSet:   optional.Some(76),
	}
	assert.Equal(t, map[string]any{
		"output_text_delimiter":  `"`,
		"output_field_separator": ",",
		"output_character_set":   76,
	}, csv.AsDict())
}

func TestCloudTokens(t *testing.T) {
	_, err := NewOAuthToken("box", "tok")
	assert.ErrorIs(t, err, ErrUnknownCloudService)
	_, err = NewOAuthToken(GoogleDrive, "")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	aws, err := NewAWSToken("AKIA", "secret")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"output_location":    "aws_s3",
		"cloud_access_token": map[string]any{"access_key": "AKIA", "secret_access_key": "secret"},
	}, aws.AsDict())
	_, err = NewAWSToken("AKIA", "")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	sftp, err := NewSFTPToken("files.example.com")
	require.NoError(t, err)
	sftp.Port = optional.Some(22)
	sftp.User = optional.Some("cop")
	assert.Equal(t, map[string]any{
		"output_location":    "sftp",
		"cloud_access_token": map[string]any{"host": "files.example.com", "port": 22, "user": "cop"},
	}, sftp.AsDict())

	sftp.Port = optional.Some(70000)
	assert.ErrorIs(t, sftp.Validate(), ErrInvalidConfig)

	ftp, err := NewFTPToken("ftp.example.com")
	require.NoError(t, err)
	assert.Equal(t, FTP, ftp.Service())

	assert.ElementsMatch(t, []string{"dropbox", "gdrive", "onedrive", "aws_s3", "ftp", "sftp"}, AvailableServices())
}

func TestOAuthTokenFromOAuth2(t *testing.T) {
	tok, err := OAuthTokenFromOAuth2(OneDrive, &oauth2.Token{
		AccessToken: "abc",
		Expiry:      time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"output_location": "onedrive", "cloud_access_token": "abc"}, tok.AsDict())

	_, err = OAuthTokenFromOAuth2(OneDrive, &oauth2.Token{AccessToken: "abc", Expiry: time.Now().Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = OAuthTokenFromOAuth2(OneDrive, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestServerConfigAsDict(t *testing.T) {
	cfg := ServerConfig{
		APIKey:  optional.Some("key"),
		Logging: map[string]any{"user": "john"},
		Proxies: map[string]string{"https": "http://proxy:3128"},
		Printer: NewPrinter("http://printer.local:631/ipp/print", "1.1"),
		Commands: &Commands{
			PostProcess: &PostProcessCommand{
				Command:      Command{Command: "echo", Parameters: map[string]any{"a": 1}},
				ReturnOutput: optional.Some(true),
				DeleteDelay:  optional.Some(1500),
			},
			PreConversion:  &Command{Command: "pre"},
			PostConversion: &Command{Command: "post", Parameters: map[string]any{"b": 2}},
			PostMerge:      &Command{Command: "merged"},
		},
		RemoteDebug: true,
	}

	assert.Equal(t, map[string]any{
		"api_key": "key",
		"logging": map[string]any{"user": "john"},
		"ipp": map[string]any{
			"location":  "http://printer.local:631/ipp/print",
			"version":   "1.1",
			"requester": "CloudOfficePrint",
			"job_name":  "CloudOfficePrint",
		},
		"post_process": map[string]any{
			"command":            "echo",
			"command_parameters": map[string]any{"a": 1},
			"return_output":      true,
			"delete_delay":       1500,
		},
		"conversion": map[string]any{
			"pre_command":             "pre",
			"post_command":            "post",
			"post_command_parameters": map[string]any{"b": 2},
		},
		"merge":            map[string]any{"post_command": "merged"},
		"aop_remote_debug": "Yes",
	}, cfg.AsDict())
	assert.NoError(t, cfg.Validate())

	assert.Empty(t, (&ServerConfig{}).AsDict())
	assert.Empty(t, (&Commands{}).AsDict())
}

func TestPrinterValidate(t *testing.T) {
	assert.NoError(t, NewPrinter("http://printer:631", "2.0").Validate())
	assert.ErrorIs(t, NewPrinter("", "2.0").Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, NewPrinter("http://printer:631", "").Validate(), ErrInvalidConfig)
}

func ippServer(t *testing.T, status goipp.Status) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if !assert.NoError(t, err) {
			return
		}

		var req goipp.Message
		if !assert.NoError(t, req.DecodeBytes(body)) {
			return
		}
		assert.Equal(t, goipp.OpGetPrinterAttributes, goipp.Op(req.Code))

		resp := goipp.NewResponse(goipp.DefaultVersion, status, req.RequestID)
		resp.Operation.Add(goipp.MakeAttribute("attributes-charset",
			goipp.TagCharset, goipp.String("utf-8")))
		resp.Printer.Add(goipp.MakeAttribute("printer-make-and-model",
			goipp.TagText, goipp.String("Test Printer 3000")))
		resp.Printer.Add(goipp.MakeAttribute("printer-state",
			goipp.TagEnum, goipp.Integer(3)))

		data, err := resp.EncodeBytes()
		if !assert.NoError(t, err) {
			return
		}
		w.Header().Set("Content-Type", goipp.ContentType)
		_, _ = w.Write(data)
	}))
}

func TestPrinterProbe(t *testing.T) {
	srv := ippServer(t, goipp.StatusOk)
	defer srv.Close()

	status, err := NewPrinter(srv.URL+"/ipp/print", "2.0").Probe(t.Context(), srv.Client())
	require.NoError(t, err)
	assert.Equal(t, "Test Printer 3000", status.MakeAndModel)
	assert.Equal(t, "3", status.State)
}

func TestPrinterProbeErrorStatus(t *testing.T) {
	srv := ippServer(t, goipp.StatusErrorNotFound)
	defer srv.Close()

	_, err := NewPrinter(srv.URL+"/ipp/print", "2.0").Probe(t.Context(), srv.Client())
	assert.Error(t, err)
}
