package envelope

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/MKhiriev/go-password-vault/internal/crypto"
	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/internal/mock"
	"github.com/MKhiriev/go-password-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func TestFileService_SaveAndRead(t *testing.T) {
	svc := NewFileService(newTestCodec())
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "Work", "Mail", "email.crypto")

	require.NoError(t, svc.SaveFile(ctx, path, []byte("payload"), models.TwofishCTR, "pw"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, filePerm, info.Mode().Perm())
	}
	assert.True(t, svc.IsEncrypted(ctx, path))

	got, err := svc.ReadFile(ctx, path, "pw")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestFileService_SaveOverwrites(t *testing.T) {
	svc := NewFileService(newTestCodec())
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "v.crypto")

	require.NoError(t, svc.SaveFile(ctx, path, []byte("first"), models.AES256GCM, "pw"))
	require.NoError(t, svc.SaveFile(ctx, path, []byte("second"), models.BlowfishCBC, "other"))

	got, err := svc.ReadFile(ctx, path, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	_, err = svc.ReadFile(ctx, path, "pw")
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestFileService_ReadMissingFile(t *testing.T) {
	svc := NewFileService(newTestCodec())
	path := filepath.Join(t.TempDir(), "missing.crypto")

	_, err := svc.ReadFile(testCtx(), path, "pw")
	require.ErrorIs(t, err, ErrFileRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)
}

func TestFileService_ReadPlainFile(t *testing.T) {
	svc := NewFileService(newTestCodec())
	path := filepath.Join(t.TempDir(), "plain.crypto")
	require.NoError(t, os.WriteFile(path, []byte(`{"login":"a"}`), 0o600))

	_, err := svc.ReadFile(testCtx(), path, "pw")
	require.ErrorIs(t, err, ErrNotEnvelope)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)

	assert.False(t, svc.IsEncrypted(testCtx(), path))
}

func TestFileService_IsEncrypted_Missing(t *testing.T) {
	svc := NewFileService(newTestCodec())
	assert.False(t, svc.IsEncrypted(testCtx(), filepath.Join(t.TempDir(), "nope")))
}

func TestFileService_SaveUnsupportedAlgorithm(t *testing.T) {
	svc := NewFileService(newTestCodec())
	path := filepath.Join(t.TempDir(), "x.crypto")

	err := svc.SaveFile(testCtx(), path, []byte("x"), "ROT13", "pw")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestFileService_SaveIntoFileParent(t *testing.T) {
	svc := NewFileService(newTestCodec())
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o600))

	err := svc.SaveFile(testCtx(), filepath.Join(blocker, "v.crypto"), []byte("x"), models.AES256GCM, "pw")
	assert.ErrorIs(t, err, ErrFileWrite)
}

func TestFileService_SaveEncryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := mock.NewMockCipherStrategy(ctrl)
	strategy.EXPECT().Algorithm().Return(models.AES256GCM)
	strategy.EXPECT().Encrypt(gomock.Any(), "pw").Return(models.SecuredBlob(""), crypto.ErrKeyDerivation)

	svc := NewFileService(NewCodec(strategy))
	path := filepath.Join(t.TempDir(), "x.crypto")

	err := svc.SaveFile(testCtx(), path, []byte("x"), models.AES256GCM, "pw")
	require.ErrorIs(t, err, ErrFileWrite)
	assert.ErrorIs(t, err, crypto.ErrKeyDerivation)
}
