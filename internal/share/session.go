package share

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/hirochachacha/go-smb2"
	"go.uber.org/zap"
)

// DefaultPort is the SMB over TCP port.
const DefaultPort = 445

// DefaultDialTimeout bounds the TCP connect to the server.
const DefaultDialTimeout = 10 * time.Second

// Config holds the parameters needed to register a session with a server.
type Config struct {
	// Server is the server hostname or address.
	Server string
	// Share is the share name mounted on the server.
	Share string
	// Username, Password and Domain are the NTLM credentials.
	Username string
	Password string
	Domain   string
	// Port is the TCP port (0 = DefaultPort).
	Port int
	// DialTimeout bounds the TCP connect (0 = DefaultDialTimeout).
	DialTimeout time.Duration
}

// mount is the subset of an SMB tree connection used by Session.
// Names are relative to the share root and use the canonical separator.
type mount interface {
	stat(ctx context.Context, name string) (fs.FileInfo, error)
	readDir(ctx context.Context, name string) ([]fs.FileInfo, error)
	umount() error
}

// Session is an authenticated SMB session with one mounted share.
// It implements Client and must be released with Close.
type Session struct {
	root   string
	mount  mount
	logoff func() error
	conn   net.Conn
	log    *zap.Logger
}

// Dial connects to cfg.Server, authenticates and mounts cfg.Share.
func Dial(ctx context.Context, cfg Config, log *zap.Logger) (*Session, error) {
	if cfg.Server == "" {
		return nil, errors.New("server is required")
	}

	if cfg.Share == "" {
		return nil, errors.New("share is required")
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}

	if log == nil {
		log = zap.NewNop()
	}

	addr := net.JoinHostPort(cfg.Server, strconv.Itoa(cfg.Port))

	log.Debug("connecting", zap.String("addr", addr), zap.String("user", cfg.Username))

	dialer := net.Dialer{Timeout: cfg.DialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}

	d := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     cfg.Username,
			Password: cfg.Password,
			Domain:   cfg.Domain,
		},
	}

	sess, err := d.DialContext(ctx, conn)
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("registering session with %s: %w", cfg.Server, err)
	}

	root := Root(cfg.Server, cfg.Share)

	tree, err := sess.Mount(root)
	if err != nil {
		_ = sess.Logoff()
		_ = conn.Close()

		return nil, fmt.Errorf("mounting %s: %w", root, err)
	}

	log.Debug("mounted share", zap.String("root", root))

	return &Session{
		root:   root,
		mount:  smbMount{share: tree},
		logoff: sess.Logoff,
		conn:   conn,
		log:    log,
	}, nil
}

// Root returns the share root path, e.g. \\server\pkv_share.
func (s *Session) Root() string {
	return s.root
}

// Stat implements Client.
func (s *Session) Stat(ctx context.Context, path string) (Metadata, error) {
	name, err := RelPath(s.root, path)
	if err != nil {
		return Metadata{}, err
	}

	info, err := s.mount.stat(ctx, name)
	if err != nil {
		return Metadata{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return Metadata{Mode: info.Mode(), Size: info.Size()}, nil
}

// ListDirectory implements Client.
func (s *Session) ListDirectory(ctx context.Context, path string) ([]string, error) {
	name, err := RelPath(s.root, path)
	if err != nil {
		return nil, err
	}

	infos, err := s.mount.readDir(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}

// Close unmounts the share, logs off and closes the connection.
func (s *Session) Close() error {
	var errs []error

	if s.mount != nil {
		if err := s.mount.umount(); err != nil {
			errs = append(errs, fmt.Errorf("unmounting %s: %w", s.root, err))
		}
	}

	if s.logoff != nil {
		if err := s.logoff(); err != nil {
			errs = append(errs, fmt.Errorf("logging off: %w", err))
		}
	}

	if s.conn != nil {
		if err := s.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
	}

	s.log.Debug("session closed", zap.String("root", s.root))

	return errors.Join(errs...)
}

// smbMount adapts a go-smb2 tree connection to mount.
type smbMount struct {
	share *smb2.Share
}

func (m smbMount) stat(ctx context.Context, name string) (fs.FileInfo, error) {
	return m.share.WithContext(ctx).Stat(name)
}

func (m smbMount) readDir(ctx context.Context, name string) ([]fs.FileInfo, error) {
	return m.share.WithContext(ctx).ReadDir(name)
}

func (m smbMount) umount() error {
	return m.share.Umount()
}
