package dto

import "encoding/json"

// Optional различает три состояния поля в JSON: ключа нет вовсе (Set=false),
// ключ есть со значением null (Set=true, Valid=false) и ключ есть со
// значением (Set=true, Valid=true). Обычный указатель склеивает первые два
// состояния, а у них разная семантика при частичном обновлении.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON вызывается только когда ключ присутствует в объекте —
// на этом и держится отличие "не передано" от "передан null"
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
