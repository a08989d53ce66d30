// Package main provides localization for the ffview CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Decode and display the video stream of a media file": "メディアファイルの映像ストリームをデコードして表示",
		"YAML configuration file":                              "YAML設定ファイル",
		"Log level (debug, info, warn, error, disable)":        "ログレベル (debug, info, warn, error, disable)",
		"Invalid configuration":                                "設定が不正です",
		"Usage":                                                "使い方",

		// Decoder flags
		"Ignore streams without a decoder instead of failing":   "デコーダのないストリームをエラーにせず無視",
		"Force the input container format (e.g. mp4, matroska)": "入力コンテナ形式を指定 (例: mp4, matroska)",

		// Play and pattern
		"Play the video stream of FILE in a window":       "FILEの映像ストリームをウィンドウで再生",
		"Show a generated test pattern":                   "生成したテストパターンを表示",
		"Window title":                                    "ウィンドウタイトル",
		"Window width in pixels":                          "ウィンドウの幅 (ピクセル)",
		"Window height in pixels":                         "ウィンドウの高さ (ピクセル)",
		"Scale frames to the window keeping aspect ratio": "アスペクト比を保ってフレームをウィンドウに合わせる",
		"Close the window when the video ends":            "再生終了時にウィンドウを閉じる",
		"Played %d frames":                                "%d フレームを再生しました",

		// Dump
		"Write the frames of FILE as images":   "FILEのフレームを画像として書き出す",
		"Output directory":                     "出力ディレクトリ",
		"Image format (png or bmp)":            "画像形式 (png または bmp)",
		"Stop after N frames (0 = all)":        "N フレームで停止 (0 = すべて)",
		"Scale frames to this width":           "この幅にフレームを縮小",
		"Stamp the frame number on each image": "各画像にフレーム番号を描画",
		"Invalid frame limit":                  "フレーム数の指定が不正です",
		"Wrote %d frames to %s":                "%d フレームを %s に書き出しました",

		// Probe
		"Describe the video stream of FILE":                 "FILEの映像ストリームを表示",
		"Video stream":                                      "映像ストリーム",
		"Time base":                                         "タイムベース",
		"(fragmented)":                                      "(フラグメント化)",
		"Show the versions of the loaded FFmpeg libraries": "読み込んだFFmpegライブラリのバージョンを表示",
	})
}
