package model

import "encoding/json"

// StringArray 服务端以「JSON 字符串里再套一层 JSON 数组」的形式传输的字段
// （如 references、options、correct_answer），解码只发生在反序列化这一处，
// 内部代码拿到的始终是真正的字符串数组。
type StringArray []string

// DecodeStringArray 解码二次编码的数组字符串，空串视为无内容
func DecodeStringArray(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeStringArray 还原为线上传输格式，元素与顺序保持不变
func EncodeStringArray(arr []string) (string, error) {
	if arr == nil {
		arr = []string{}
	}
	b, err := json.Marshal(arr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalJSON 同时兼容字符串包裹的数组与裸数组两种形态
func (a *StringArray) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*a = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		arr, err := DecodeStringArray(s)
		if err != nil {
			return err
		}
		*a = arr
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*a = arr
	return nil
}

// MarshalJSON 按线上传输格式输出二次编码字符串
func (a StringArray) MarshalJSON() ([]byte, error) {
	s, err := EncodeStringArray(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}
