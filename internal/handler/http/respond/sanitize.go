package respond

import (
	"regexp"
)

var (
	// アクセストークンパターン
	// 注意: フォーム/クエリの access_token を先に適用する（より具体的なパターンから）
	accessTokenPattern = regexp.MustCompile(`access_token=[a-zA-Z0-9._-]+`)
	// Authorization ヘッダーの Bearer トークン
	bearerTokenPattern = regexp.MustCompile(`Bearer [a-zA-Z0-9._-]+`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// トークンのマスク（順序重要: より具体的なパターンから適用）
	msg = accessTokenPattern.ReplaceAllString(msg, "access_token=****")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
