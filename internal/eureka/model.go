package eureka

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Status is the lifecycle state Eureka reports for an instance.
type Status string

const (
	StatusUp           Status = "UP"
	StatusDown         Status = "DOWN"
	StatusStarting     Status = "STARTING"
	StatusOutOfService Status = "OUT_OF_SERVICE"
	StatusUnknown      Status = "UNKNOWN"
)

// Port is Eureka's {"$": 8080, "@enabled": "true"} pair. Depending on the
// server's serializer both members may come as strings or native values.
type Port struct {
	Number  int  `json:"$"`
	Enabled bool `json:"@enabled"`
}

func (p *Port) UnmarshalJSON(b []byte) error {
	var raw struct {
		Number  json.RawMessage `json:"$"`
		Enabled json.RawMessage `json:"@enabled"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	n, err := looseInt(raw.Number)
	if err != nil {
		return fmt.Errorf("port value: %w", err)
	}
	enabled, err := looseBool(raw.Enabled)
	if err != nil {
		return fmt.Errorf("port @enabled: %w", err)
	}

	p.Number, p.Enabled = n, enabled
	return nil
}

// Instance is one registered process of an application.
type Instance struct {
	InstanceID       string `json:"instanceId"`
	HostName         string `json:"hostName"`
	App              string `json:"app"`
	IPAddr           string `json:"ipAddr"`
	Status           Status `json:"status"`
	Port             Port   `json:"port"`
	SecurePort       Port   `json:"securePort"`
	HomePageURL      string `json:"homePageUrl"`
	StatusPageURL    string `json:"statusPageUrl"`
	HealthCheckURL   string `json:"healthCheckUrl"`
	VIPAddress       string `json:"vipAddress"`
	SecureVIPAddress string `json:"secureVipAddress"`
}

// Up reports whether the instance is serving.
func (i Instance) Up() bool { return i.Status == StatusUp }

// BaseURL is the plain-HTTP address of the instance, ex: http://10.0.0.4:8080.
func (i Instance) BaseURL() string {
	return "http://" + net.JoinHostPort(i.HostName, strconv.Itoa(i.Port.Number))
}

// Instances decodes both a single instance object and an array of them;
// Eureka collapses one-element lists depending on its codec.
type Instances []Instance

func (is *Instances) UnmarshalJSON(b []byte) error {
	list, err := oneOrMany[Instance](b)
	if err != nil {
		return err
	}
	*is = list
	return nil
}

// Application groups the instances registered under one name.
type Application struct {
	Name      string    `json:"name"`
	Instances Instances `json:"instance"`
}

// Applications decodes like Instances.
type Applications []Application

func (as *Applications) UnmarshalJSON(b []byte) error {
	list, err := oneOrMany[Application](b)
	if err != nil {
		return err
	}
	*as = list
	return nil
}

// applicationResponse is the body of GET /eureka/apps/{name}.
type applicationResponse struct {
	Application *Application `json:"application"`
}

// applicationsResponse is the body of GET /eureka/apps.
type applicationsResponse struct {
	Applications struct {
		VersionsDelta string       `json:"versions__delta"`
		AppsHashcode  string       `json:"apps__hashcode"`
		Application   Applications `json:"application"`
	} `json:"applications"`
}

func oneOrMany[T any](b []byte) ([]T, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	if b[0] == '[' {
		var list []T
		if err := json.Unmarshal(b, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

func looseInt(raw json.RawMessage) (int, error) {
	s := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	if s == "" || s == "null" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func looseBool(raw json.RawMessage) (bool, error) {
	s := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	if s == "" || s == "null" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
