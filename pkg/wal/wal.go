package wal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// rw------- (只有擁有者可讀寫)，WAL 內含帳戶資料
const FileModePrivate fs.FileMode = 0600

// ErrCorrupt 檔案中間出現無法解析的紀錄 (不是寫到一半的尾巴)
var ErrCorrupt = errors.New("wal: corrupt entry")

// WAL Write-Ahead Log，每筆資料一行 JSON
//
// 結構:
//
//	file: O_APPEND 開啟的檔案
//	size: 最後一筆完整紀錄結尾的位置，寫入失敗時截斷回這裡
type WAL struct {
	file *os.File
	size int64
	mu   sync.Mutex
}

// NewWAL 開啟或建立一個 WAL 檔案
// O_RDWR讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func NewWAL(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &WAL{file: file, size: info.Size()}, nil
}

// Write 寫入一筆資料並刷入硬碟，回傳 nil 代表資料已落地
//
// 寫入或 fsync 失敗時把檔案截斷回寫入前的大小，後續寫入不會接在殘缺的行後面。
func (w *WAL) Write(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(line); err != nil {
		return w.rollback(err)
	}
	if err := w.file.Sync(); err != nil {
		return w.rollback(err)
	}
	w.size += int64(len(line))
	return nil
}

func (w *WAL) rollback(cause error) error {
	if err := w.file.Truncate(w.size); err != nil {
		return errors.Join(cause, fmt.Errorf("wal: truncate after failed write: %w", err))
	}
	return cause
}

// Close 關閉檔案
func (w *WAL) Close() error {
	return w.file.Close()
}

// ReadAll 依寫入順序讀取所有資料
// callback 一次收到一筆 raw JSON，避免一次將所有資料載入記憶體
//
// 程序在寫入途中崩潰時，最後一行可能沒有換行符號，這段殘缺的尾巴會被截斷丟棄
// (它從未回報成功)。中間的行無法解析則回傳 ErrCorrupt。
func (w *WAL) ReadAll(callback func(jsonRaw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// 確保從頭讀取
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	reader := bufio.NewReader(w.file)
	var offset int64
	for {
		line, err := reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return w.truncateTail(offset)
			}
			break
		}
		if err != nil {
			return err
		}
		offset += int64(len(line))

		raw := bytes.TrimSpace(line)
		if len(raw) == 0 {
			continue
		}
		if !json.Valid(raw) {
			return fmt.Errorf("%w at offset %d", ErrCorrupt, offset-int64(len(line)))
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
	w.size = offset
	return nil
}

func (w *WAL) truncateTail(offset int64) error {
	if err := w.file.Truncate(offset); err != nil {
		return fmt.Errorf("wal: truncate torn tail: %w", err)
	}
	w.size = offset
	return nil
}
