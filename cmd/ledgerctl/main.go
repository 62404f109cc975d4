package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	grpcpool "github.com/JoeShih716/go-pay-ledger/pkg/grpc"
	"github.com/JoeShih716/go-pay-ledger/pkg/logger"
	pb "github.com/JoeShih716/go-pay-ledger/proto"
)

const usage = `usage: ledgerctl [-addr host:port] <command> [flags]

commands:
  deposit  -account ID -amount N
  transfer -account ID -to EMAIL -amount N
  balance  -account ID
  history  -account ID [-page N]
  bench    -account ID [-count N] [-concurrency N] [-amount N]
`

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC server address")
	timeout := flag.Duration("timeout", 5*time.Second, "per-command timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewWithConfig(logger.Config{Level: "info", Pretty: true})

	pool := grpcpool.NewPool()
	defer pool.Close()
	conn, err := pool.GetConnection(*addr)
	if err != nil {
		log.Fatal().Err(err).Msg("did not connect")
	}
	client := pb.NewLedgerServiceClient(conn)

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if cmd == "bench" {
		err = runBench(client, args, log)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		err = run(ctx, client, cmd, args)
		cancel()
	}
	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, client pb.LedgerServiceClient, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	account := fs.Int64("account", 0, "account id")
	amount := fs.Int64("amount", 0, "amount")
	to := fs.String("to", "", "recipient email")
	page := fs.Int("page", 1, "history page (1-indexed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd {
	case "deposit":
		out, err := client.Deposit(ctx, &pb.DepositRequest{AccountId: *account, Amount: *amount})
		if err != nil {
			return err
		}
		printOutcome(out)
	case "transfer":
		out, err := client.Transfer(ctx, &pb.TransferRequest{AccountId: *account, RecipientEmail: *to, Amount: *amount})
		if err != nil {
			return err
		}
		printOutcome(out)
	case "balance":
		out, err := client.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: *account})
		if err != nil {
			return err
		}
		fmt.Printf("account %d balance %d\n", out.AccountId, out.Balance)
	case "history":
		out, err := client.ListHistory(ctx, &pb.ListHistoryRequest{AccountId: *account, Page: int32(*page)})
		if err != nil {
			return err
		}
		fmt.Printf("page %d/%d (total %d)\n", out.Page, out.Pages, out.Total)
		for _, r := range out.Records {
			printRecord(r)
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printOutcome(out *pb.OutcomeResponse) {
	if out.Applied {
		fmt.Printf("applied, balance %d\n", out.Balance)
	} else {
		fmt.Printf("rejected (%s), balance %d\n", out.Reason, out.Balance)
	}
	if out.Record != nil {
		printRecord(out.Record)
	}
}

func printRecord(r *pb.TransactionRecord) {
	at := time.UnixMilli(r.CreatedAtUnixMilli).Format(time.RFC3339)
	fmt.Printf("  #%d %s %-7s %s -> %s %d  (%s)\n", r.Id, at, r.Status, r.Sender, r.Recipient, r.Amount, r.RefId)
}

// runBench 併發送出存款請求並計算 TPS
func runBench(client pb.LedgerServiceClient, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	account := fs.Int64("account", 0, "account id")
	count := fs.Int("count", 10000, "total requests")
	concurrency := fs.Int("concurrency", 100, "in-flight requests")
	amount := fs.Int64("amount", 1, "amount per deposit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var (
		wg       sync.WaitGroup
		failed   atomic.Int64
		rejected atomic.Int64
	)
	sem := make(chan struct{}, *concurrency)
	start := time.Now()

	for i := 0; i < *count; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := client.Deposit(ctx, &pb.DepositRequest{AccountId: *account, Amount: *amount})
			if err != nil {
				if failed.Add(1) == 1 {
					log.Warn().Err(err).Int("request", idx).Msg("deposit failed")
				}
				return
			}
			if !out.Applied {
				rejected.Add(1)
			}
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)
	fmt.Printf("Completed %d requests in %v (failed %d, rejected %d)\n", *count, elapsed, failed.Load(), rejected.Load())
	fmt.Printf("TPS: %.2f\n", float64(*count)/elapsed.Seconds())
	return nil
}
