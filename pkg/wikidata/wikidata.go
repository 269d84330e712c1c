// Package wikidata publishes structured business entities to the Wikidata
// knowledge base through the MediaWiki action API (wbeditentity).
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
)

// DefaultAPIURL is the production Wikidata action API endpoint.
const DefaultAPIURL = "https://www.wikidata.org/w/api.php"

// Wikidata property/item identifiers used when building business entities.
const (
	propInstanceOf      = "P31"
	propOfficialWebsite = "P856"
	itemBusiness        = "Q4830453" // business (commercial organization)
)

// Publisher is the abstraction for the entity publish step.
//
//go:generate mockgen -package mockwikidata -source=wikidata.go -destination=mock/mockwikidata.go *
type Publisher interface {
	// Publish creates (or updates, when the entity carries a QID) a Wikidata
	// item for the entity and returns its QID.
	Publish(ctx context.Context, entity domain.WikidataEntity, website string) (string, error)
}

// Client talks to the Wikidata action API using an OAuth bearer token and
// fulfills the Publisher interface.
type Client struct {
	httpClient *http.Client
	apiURL     string
	token      string
}

// entityData is the wbeditentity JSON payload.
type entityData struct {
	Labels       map[string]labelValue `json:"labels,omitempty"`
	Descriptions map[string]labelValue `json:"descriptions,omitempty"`
	Claims       []claim               `json:"claims,omitempty"`
}

type labelValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

type claim struct {
	Mainsnak snak   `json:"mainsnak"`
	Type     string `json:"type"`
	Rank     string `json:"rank"`
}

type snak struct {
	Snaktype  string    `json:"snaktype"`
	Property  string    `json:"property"`
	Datavalue datavalue `json:"datavalue"`
}

type datavalue struct {
	Value any    `json:"value"`
	Type  string `json:"type"`
}

// buildData converts a domain entity plus its official website into the
// wbeditentity payload: labels, descriptions, an instance-of claim and an
// official-website claim.
func buildData(entity domain.WikidataEntity, website string) entityData {
	data := entityData{
		Labels:       map[string]labelValue{},
		Descriptions: map[string]labelValue{},
	}
	for lang, value := range entity.Labels {
		data.Labels[lang] = labelValue{Language: lang, Value: value}
	}
	for lang, value := range entity.Descriptions {
		data.Descriptions[lang] = labelValue{Language: lang, Value: value}
	}

	data.Claims = append(data.Claims, claim{
		Type: "statement",
		Rank: "normal",
		Mainsnak: snak{
			Snaktype: "value",
			Property: propInstanceOf,
			Datavalue: datavalue{
				Type: "wikibase-entityid",
				Value: map[string]string{
					"entity-type": "item",
					"id":          itemBusiness,
				},
			},
		},
	})
	if website != "" {
		data.Claims = append(data.Claims, claim{
			Type: "statement",
			Rank: "normal",
			Mainsnak: snak{
				Snaktype: "value",
				Property: propOfficialWebsite,
				Datavalue: datavalue{
					Type:  "string",
					Value: website,
				},
			},
		})
	}

	return data
}

// csrfToken fetches a CSRF token; the action API requires one for every edit.
func (c *Client) csrfToken(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("meta", "tokens")
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token request failed: %s", strings.TrimSpace(string(b)))
	}

	var tokenResp struct {
		Query struct {
			Tokens struct {
				CsrfToken string `json:"csrftoken"`
			} `json:"tokens"`
		} `json:"query"`
	}
	if err := json.Unmarshal(b, &tokenResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if tokenResp.Query.Tokens.CsrfToken == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "no csrf token returned")
	}

	return tokenResp.Query.Tokens.CsrfToken, nil
}

// Publish creates or updates a Wikidata item for the entity and returns its
// QID. Editing an existing item requires entity.QID to be set.
func (c *Client) Publish(ctx context.Context, entity domain.WikidataEntity, website string) (string, error) {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get csrf token: %w", err)
	}

	dataBytes, err := json.Marshal(buildData(entity, website))
	if err != nil {
		return "", fmt.Errorf("could not marshal entity data: %w", err)
	}

	form := url.Values{}
	form.Set("action", "wbeditentity")
	form.Set("format", "json")
	form.Set("token", token)
	form.Set("data", string(dataBytes))
	if entity.QID != "" {
		form.Set("id", entity.QID)
	} else {
		form.Set("new", "item")
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.apiURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("edit request failed: %s", strings.TrimSpace(string(b)))
	}

	var editResp struct {
		Entity *struct {
			ID string `json:"id"`
		} `json:"entity"`
		Error *struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.Unmarshal(b, &editResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if editResp.Error != nil {
		// the action API reports failures inside a 200 body
		if editResp.Error.Code == "ratelimited" {
			return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", editResp.Error.Info)
		}

		return "", fmt.Errorf("edit failed: %s: %s", editResp.Error.Code, editResp.Error.Info)
	}
	if editResp.Entity == nil || editResp.Entity.ID == "" {
		return "", fmt.Errorf("edit returned no entity id")
	}

	return editResp.Entity.ID, nil
}

// Ensure Client conforms to the Publisher interface at compile time.
var _ Publisher = (*Client)(nil)

// New constructs a Client for the given API URL (empty uses production
// Wikidata) and OAuth bearer token.
func New(httpClient *http.Client, apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		httpClient: httpClient,
		apiURL:     apiURL,
		token:      token,
	}
}
