package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	calls   int
	lastMsg string
}

func (f *fakeClient) GenerateContent(ctx context.Context, system, message string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastMsg = message
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.reply, f.err
}

func TestReplyWithoutClientReturnsMissingKeyFallback(t *testing.T) {
	svc := NewService(nil, nil)

	reply, err := svc.Reply(context.Background(), "tok", "como organizar prateleiras?")
	require.NoError(t, err)
	assert.Equal(t, "Erro: Chave de API não configurada. Por favor, verifique suas variáveis de ambiente.", reply)
}

func TestReplyPassesThroughModelText(t *testing.T) {
	client := &fakeClient{reply: "Use etiquetas coloridas e o método 5S."}
	svc := NewService(client, nil)

	reply, err := svc.Reply(context.Background(), "tok", "dicas de etiquetagem")
	require.NoError(t, err)
	assert.Equal(t, "Use etiquetas coloridas e o método 5S.", reply)
	assert.Equal(t, "dicas de etiquetagem", client.lastMsg)
}

func TestReplyRecoversServiceFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := NewService(client, nil)

	reply, err := svc.Reply(context.Background(), "tok", "olá")
	require.NoError(t, err, "external failures never propagate as faults")
	assert.Equal(t, "Desculpe, ocorreu um erro ao conectar com o assistente inteligente.", reply)
}

func TestReplyEmptyResponseFallback(t *testing.T) {
	client := &fakeClient{reply: "   "}
	svc := NewService(client, nil)

	reply, err := svc.Reply(context.Background(), "tok", "olá")
	require.NoError(t, err)
	assert.Equal(t, "Desculpe, não consegui gerar uma resposta no momento.", reply)
}

func TestReplyRejectsConcurrentMessagePerSession(t *testing.T) {
	client := &fakeClient{reply: "ok", block: make(chan struct{})}
	svc := NewService(client, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Reply(context.Background(), "tok", "primeira")
		assert.NoError(t, err)
	}()

	// Wait until the first call is inside the client.
	for {
		client.mu.Lock()
		started := client.calls > 0
		client.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, err := svc.Reply(context.Background(), "tok", "segunda")
	assert.ErrorIs(t, err, ErrBusy)

	// A different session is not blocked.
	otherDone := make(chan struct{})
	go func() {
		defer close(otherDone)
		_, err := svc.Reply(context.Background(), "outro", "oi")
		assert.NoError(t, err)
	}()

	close(client.block)
	<-done
	<-otherDone

	// Once resolved, the session can send again.
	client.block = nil
	_, err = svc.Reply(context.Background(), "tok", "terceira")
	assert.NoError(t, err)
}
