package usecase

import "time"

type options struct {
	now       func() time.Time
	publisher RecordPublisher
}

// Option 服務的可選設定
type Option func(*options)

// WithClock 指定時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPublisher 指定交易紀錄提交後的通知對象
func WithPublisher(p RecordPublisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:       func() time.Time { return time.Now().UTC() },
		publisher: NopPublisher{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
