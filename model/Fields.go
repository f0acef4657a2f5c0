package model

import (
	"bytes"
	"encoding/json"
)

// Count accepts either a bare number or a collection whose length
// is the number. The backend mixes both freely (likes, followers).
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*c = 0
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*c = Count(len(items))
		return nil
	}
	var number int64
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*c = Count(number)
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(c))
}

// PostList carries the posts field of a user: profile responses
// nest the whole collection there, sample payloads a bare count.
type PostList struct {
	Count int64
	Items []Post
}

func (p *PostList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*p = PostList{}
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []Post
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		p.Items = items
		p.Count = int64(len(items))
		return nil
	}
	var number int64
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*p = PostList{Count: number}
	return nil
}

func (p PostList) MarshalJSON() ([]byte, error) {
	if p.Items != nil {
		return json.Marshal(p.Items)
	}
	return json.Marshal(p.Count)
}
