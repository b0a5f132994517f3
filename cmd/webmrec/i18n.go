package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":  "出力先",
		"Input":   "入力",
		"Session": "セッション設定",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Commands
		"Compile still frames into WebM video":              "静止画フレームを WebM 動画にコンパイル",
		"Compile a directory of images into a WebM file":    "ディレクトリ内の画像を WebM ファイルにコンパイル",
		"Compile a generated test pattern into a WebM file": "生成したテストパターンを WebM ファイルにコンパイル",
		"Show the structure of a WebM file":                 "WebM ファイルの構造を表示",

		// Flags
		"Output WebM file path (required)":              "出力 WebM ファイルパス（必須）",
		"Output compile summary to file (.md or .json)": "コンパイルサマリーをファイルに出力（Markdown形式、.json なら JSON）",
		"YAML configuration file":                       "YAML 設定ファイル",
		"Frame rate; each frame lasts 1000/fps ms":      "フレームレート（各フレームは 1000/fps ms）",
		"WebP quality for re-encoded frames (0.0-1.0)":  "再エンコードするフレームの WebP 品質（0.0-1.0）",
		"Quality preset (low, medium, high)":            "品質プリセット（low, medium, high）",
		"Maximum cluster duration in milliseconds":      "クラスタの最大長（ミリ秒）",
		"Parallel frame decoders (0 = number of CPUs)":  "並列デコーダー数（0 = CPU 数）",
		"Path to ffmpeg executable":                     "ffmpeg 実行ファイルのパス",
		"Scale decoded images to this width":            "デコードした画像をこの幅に拡大縮小",
		"Scale decoded images to this height":           "デコードした画像をこの高さに拡大縮小",
		"Number of frames to generate":                  "生成するフレーム数",
		"Frame width":                                   "フレームの幅",
		"Frame height":                                  "フレームの高さ",
		"Print the report as JSON":                      "レポートを JSON で出力",
		"Enable debug output":                           "デバッグ出力を有効化",
		"Directory for debug output":                    "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":          "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                       "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Error messages
		"Input directory argument is required": "入力ディレクトリ引数が必要です",
		"WebM file argument is required":       "WebM ファイル引数が必要です",

		// Inspect output
		"Doc type":  "DocType",
		"Duration":  "長さ",
		"File size": "ファイルサイズ",
		"Track":     "トラック",
		"Clusters":  "クラスタ",
		"Cluster":   "クラスタ",
		"Frames":    "フレーム",

		// Summary content
		"Compile Summary":      "コンパイルサマリー",
		"Source":               "入力",
		"Item":                 "項目",
		"Value":                "値",
		"Settings":             "設定",
		"Quality":              "品質",
		"Max Cluster Duration": "クラスタ最大長",
		"Image Encoder":        "画像エンコーダー",
		"None":                 "なし",
		"Video":                "動画",
		"Resolution":           "解像度",
		"File Size":            "ファイルサイズ",
		"Timecode":             "タイムコード",
		"Size":                 "サイズ",
		"Generated at":         "生成日時",
	})
}
