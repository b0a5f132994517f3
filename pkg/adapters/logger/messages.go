package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session level messages (info)
		"Compiling %d frames":                "%d フレームをコンパイル中",
		"Compiled %d frames into %d clusters": "%d フレームを %d クラスタにコンパイルしました",
		"Output saved to %s":                  "出力を %s に保存しました",
		"Interrupted, shutting down...":       "中断されました。シャットダウン中...",

		// Decode stage
		"Decoding %d frames with %d workers": "%d フレームを %d ワーカーでデコード中",
		"Decoded %d frames":                  "%d フレームをデコードしました",

		// Muxer
		"Frame size: %dx%d":                         "フレームサイズ: %dx%d",
		"Packed %d frames into %d clusters":         "%d フレームを %d クラスタにまとめました",
		"Cluster %d: timecode %d ms, %d frames":     "クラスタ %d: タイムコード %d ms, %d フレーム",
		"Muxed %d bytes, duration %.1f ms":          "%d バイトを多重化しました (長さ %.1f ms)",

		// Image encoder
		"Encoding %dx%d image with quality %d": "%dx%d の画像を品質 %d でエンコード中",

		// CLI
		"Reading %d images from %s":     "%s から %d 枚の画像を読み込み中",
		"Converting %s to lossy WebP":   "%s を非可逆 WebP に変換中",
		"Generating %d demo frames":     "%d 枚のデモフレームを生成中",

		// Warnings
		"Failed to save debug frame %d: %s": "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to save debug output: %s":   "デバッグ出力の保存に失敗しました: %s",
		"Skipping %s: %s":                   "%s をスキップします: %s",

		// Errors
		"Failed to compile: %s":      "コンパイルに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
		"Failed to read input: %s":   "入力の読み込みに失敗しました: %s",
	})
}
