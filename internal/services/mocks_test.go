package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ampta/resumecraft-backend/internal/models"
)

// In-memory fakes for the repository and collaborator interfaces.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = primitive.NewObjectID()
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memPaymentRepo struct {
	mu       sync.Mutex
	payments []models.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{}
}

func (r *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *memPaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) FindByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.PaymentID == paymentID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) FindByUserID(ctx context.Context, userID string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Payment{}
	// Newest first: walk the insertion order backwards.
	for i := len(r.payments) - 1; i >= 0; i-- {
		if r.payments[i].UserID == userID {
			out = append(out, r.payments[i])
		}
	}
	return out, nil
}

func (r *memPaymentRepo) FindByStatus(ctx context.Context, status string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Payment{}
	for i := len(r.payments) - 1; i >= 0; i-- {
		if r.payments[i].Status == status {
			out = append(out, r.payments[i])
		}
	}
	return out, nil
}

func (r *memPaymentRepo) MarkPaid(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.payments {
		if r.payments[i].OrderID == orderID && r.payments[i].Status == models.PaymentStatusCreated {
			r.payments[i].Status = models.PaymentStatusPaid
			r.payments[i].PaymentID = paymentID
			r.payments[i].Signature = signature
			return true, nil
		}
	}
	return false, nil
}

type memResumeRepo struct {
	mu      sync.Mutex
	resumes map[string]models.Resume
	seq     map[string]int // preserves update recency for ordering
	nextSeq int
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{resumes: map[string]models.Resume{}, seq: map[string]int{}}
}

func (r *memResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	resume.ID = primitive.NewObjectID()
	r.nextSeq++
	r.seq[resume.ID.Hex()] = r.nextSeq
	r.resumes[resume.ID.Hex()] = *resume
	return nil
}

func (r *memResumeRepo) FindByUserID(ctx context.Context, userID string) ([]models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Resume{}
	for _, res := range r.resumes {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.seq[out[i].ID.Hex()] > r.seq[out[j].ID.Hex()]
	})
	return out, nil
}

func (r *memResumeRepo) FindByUserAndID(ctx context.Context, userID, id string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resumes[id]; ok && res.UserID == userID {
		out := res
		return &out, nil
	}
	return nil, nil
}

func (r *memResumeRepo) Update(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSeq++
	r.seq[resume.ID.Hex()] = r.nextSeq
	r.resumes[resume.ID.Hex()] = *resume
	return nil
}

func (r *memResumeRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resumes[id]; ok && res.UserID == userID {
		delete(r.resumes, id)
	}
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	mu       sync.Mutex
	sent     []sentMail
	failWith error
}

func (n *fakeNotifier) Send(to, subject, htmlBody string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failWith != nil {
		return n.failWith
	}
	n.sent = append(n.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (n *fakeNotifier) SendWithAttachment(to, subject, body string, attachment []byte, filename string) error {
	return n.Send(to, subject, body)
}

func (n *fakeNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type fakeGateway struct {
	mu         sync.Mutex
	orders     int
	failCreate error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failCreate != nil {
		return "", g.failCreate
	}
	g.orders++
	return fmt.Sprintf("order_%06d", g.orders), nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.sign(orderID, paymentID)
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

// sign is what a well-behaved gateway would attach to its callback.
func (g *fakeGateway) sign(orderID, paymentID string) string {
	return "sig_" + orderID + "_" + paymentID
}

type fakeBlobStore struct {
	mu       sync.Mutex
	uploads  int
	failWith error
}

func (b *fakeBlobStore) Upload(ctx context.Context, data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWith != nil {
		return "", b.failWith
	}
	b.uploads++
	return fmt.Sprintf("https://cdn.example.com/img/%d.png", b.uploads), nil
}

var errBoom = errors.New("boom")
