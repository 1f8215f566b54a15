package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/eneo/apps/api/echo"
	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
	logsvc "github.com/trezcool/eneo/services/logger"
)

var app *Server

func TestMain(m *testing.M) {
	cat := catalog.MustNew(location.DefaultTable)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	location.InitValidators(validate, translator, cat)

	logger := logsvc.NewNopLogger()
	conf := &core.Config{
		AppName:  "Eneo",
		Env:      "TEST",
		TestMode: true,
		Server:   core.ServerConfig{DisableReqLogs: true},
	}

	app = NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		LocationSvc: location.NewService(cat, validate, logger),
		Translator:  translator,
	})

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte // nil: only the status code is checked
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
