package entity

// FieldError はバリデーション失敗を入力フィールド単位で表現します。
// 例外ではなくレスポンスペイロードの一部としてクライアントへ返され、
// フォームのインラインエラー表示に使われます。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
