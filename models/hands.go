package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"pokerhands/services/poker"
)

// Request shape errors, checked before the batch reaches the evaluator.
var (
	ErrCardsMissing  = errors.New("Cards parameter is missing")
	ErrCardsNotArray = errors.New("Cards must be an array")
)

// HandNotStringError reports a batch entry that is not a JSON string.
// Index is 1-based.
type HandNotStringError struct {
	Index int
}

func (e *HandNotStringError) Error() string {
	return fmt.Sprintf("Hand %d must be a string", e.Index)
}

// EvaluateRequest is the body of POST /api/v1/hands/evaluate.
// Cards stays raw so that a missing field, a non-array and a non-string
// entry can each be reported with their own message.
type EvaluateRequest struct {
	Cards json.RawMessage `json:"cards" swaggertype:"array,string" example:"H1 H13 H12 H11 H10,H9 C9 S9 H2 C2"`
}

// Hands decodes the cards field into raw hand strings.
func (r EvaluateRequest) Hands() ([]string, error) {
	if len(r.Cards) == 0 || string(r.Cards) == "null" {
		return nil, ErrCardsMissing
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(r.Cards, &entries); err != nil {
		return nil, ErrCardsNotArray
	}
	// Batch size is checked before any entry is looked at.
	if err := poker.ValidateBatch(make([]string, len(entries))); err != nil {
		return nil, err
	}

	hands := make([]string, len(entries))
	for i, entry := range entries {
		if err := json.Unmarshal(entry, &hands[i]); err != nil || string(entry) == "null" {
			return nil, &HandNotStringError{Index: i + 1}
		}
	}
	return hands, nil
}

// HandResult is one classified hand.
type HandResult struct {
	Card string `json:"card" example:"H1 H13 H12 H11 H10"`
	Hand string `json:"hand" example:"Straight flush"`
	Best bool   `json:"best" example:"true"`
}

// HandError is one hand that could not be classified, or a batch-wide
// problem labelled "Multiple hands".
type HandError struct {
	Card string `json:"card" example:"H1 H1 H2 H3 H4"`
	Msg  string `json:"msg" example:"Duplicate card H1 in hand"`
}

// EvaluateResponse always carries both lists, empty when there is nothing
// to report.
type EvaluateResponse struct {
	Result []HandResult `json:"result"`
	Error  []HandError  `json:"error"`
}

// ErrorResponse is returned when the request is rejected as a whole.
type ErrorResponse struct {
	Error string `json:"error" example:"At least one hand is required"`
}

// CategoryInfo describes one hand category and its strength.
type CategoryInfo struct {
	Name string `json:"name" example:"Full house"`
	Rank int    `json:"rank" example:"6"`
}

// CategoriesResponse is the body of GET /api/v1/hands/categories.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// NewEvaluateResponse shapes a batch result for the wire.
func NewEvaluateResponse(res poker.BatchResult) EvaluateResponse {
	out := EvaluateResponse{
		Result: make([]HandResult, 0, len(res.Results)),
		Error:  make([]HandError, 0, len(res.Failures)),
	}
	for _, r := range res.Results {
		out.Result = append(out.Result, HandResult{Card: r.Raw, Hand: r.Category.String(), Best: r.Best})
	}
	for _, f := range res.Failures {
		out.Error = append(out.Error, HandError{Card: f.Raw, Msg: f.Err.Error()})
	}
	return out
}

// NewCategoriesResponse lists every category, weakest first.
func NewCategoriesResponse() CategoriesResponse {
	cats := poker.Categories()
	out := CategoriesResponse{Categories: make([]CategoryInfo, len(cats))}
	for i, c := range cats {
		out.Categories[i] = CategoryInfo{Name: c.String(), Rank: c.Rank()}
	}
	return out
}
